package dto

// PageRequest paginación por cursor para listados.
type PageRequest struct {
	Search   string `query:"search"`
	PageSize int    `query:"page_size" validate:"min=1,max=100"`
	Cursor   string `query:"cursor"`
}

// DefaultPage aplica valores por defecto si PageSize es cero.
func (p *PageRequest) DefaultPage() {
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	PageSize   int    `json:"page_size"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
