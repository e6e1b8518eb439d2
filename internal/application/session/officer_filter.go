package session

import "sync"

// OfficerFilter mantiene, por usuario firmado, el oficial seleccionado en el
// modo gerencial. Antes era estado global mutable compartido entre pantallas;
// aquí queda detrás de una interfaz estrecha de lectura/escritura.
//
// nil significa "todos los oficiales" (el centinela explícito del filtro sin
// seleccionar) y es distinto de un id vacío. Se borra al cerrar sesión.
type OfficerFilter struct {
	mu       sync.RWMutex
	selected map[string]*string // userID → officerID seleccionado
}

// NewOfficerFilter construye el almacén de filtros.
func NewOfficerFilter() *OfficerFilter {
	return &OfficerFilter{selected: make(map[string]*string)}
}

// GetSelectedOfficer devuelve el oficial seleccionado del usuario, o nil.
func (s *OfficerFilter) GetSelectedOfficer(userID string) *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[userID]
}

// SetSelectedOfficer fija (o limpia, con nil) el oficial seleccionado.
func (s *OfficerFilter) SetSelectedOfficer(userID string, officerID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if officerID == nil {
		delete(s.selected, userID)
		return
	}
	id := *officerID
	s.selected[userID] = &id
}

// Reset descarta el filtro del usuario; se invoca al cerrar sesión.
func (s *OfficerFilter) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selected, userID)
}
