package dto

// DashboardResponse respuesta de GET /api/dashboard (solo modo gerencial).
type DashboardResponse struct {
	Farmers        int    `json:"farmers"`
	ActiveCycles   int    `json:"active_cycles"`
	TotalPlaced    int    `json:"total_placed"`
	TotalSold      int    `json:"total_sold"`
	TotalMortality int    `json:"total_mortality"`
	SoldPercent    string `json:"sold_percent"`  // dos decimales o "–"
	MortalityPct   string `json:"mortality_pct"` // dos decimales o "–"
	FeedConsumed   string `json:"feed_consumed"` // bultos, un decimal
	AvgFCR         string `json:"avg_fcr"`
	FCRRating      string `json:"fcr_rating,omitempty"`
	Severity       string `json:"severity"`             // normal | atención | crítico
	OfficerID      string `json:"officer_id,omitempty"` // vacío = todos los oficiales
}

// MemberDTO miembro de la organización para la pantalla de aprobaciones.
type MemberDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	SupervisorID string `json:"supervisor_id,omitempty"`
}

// MemberListResponse respuesta de GET /api/members.
type MemberListResponse struct {
	Members []MemberDTO  `json:"members"`
	Page    PageResponse `json:"page"`
}
