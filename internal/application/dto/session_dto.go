package dto

// OfficerFilterRequest body de PUT /api/session/officer-filter. El puntero
// distingue "sin filtro" (null → todos los oficiales) de un id presente; un id
// de cadena vacía no es lo mismo que null.
type OfficerFilterRequest struct {
	OfficerID *string `json:"officer_id"`
}

// OfficerFilterResponse respuesta de GET /api/session/officer-filter.
type OfficerFilterResponse struct {
	OfficerID *string `json:"officer_id"` // null = todos los oficiales
}

// SwitchModeRequest body de PUT /api/session/mode.
type SwitchModeRequest struct {
	Mode string `json:"mode"` // MANAGEMENT | OFFICER
}
