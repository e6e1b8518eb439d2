package remote

import "fmt"

// Error error estructurado del colaborador remoto. Message es el texto legible
// que la UI muestra tal cual (banners inline, toasts); StatusCode es el HTTP
// original de la respuesta.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

// Error implementa la interfaz error.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error del colaborador remoto (HTTP %d)", e.StatusCode)
}

// IsClientFault informa si el colaborador atribuyó la falla a la petición (4xx).
func (e *Error) IsClientFault() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
