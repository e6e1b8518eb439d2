package dto

// FarmerDTO granjero con su saldo de bultos formateado para pantalla.
type FarmerDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	Mobile          string `json:"mobile"`
	OfficerID       string `json:"officer_id,omitempty"`
	MainStock       string `json:"main_stock"`       // bultos, un decimal
	ProblematicFeed string `json:"problematic_feed"` // bultos, un decimal
	TotalConsumed   string `json:"total_consumed"`   // bultos, un decimal
	Status          string `json:"status"`
}

// FarmerListResponse respuesta de GET /api/farmers.
type FarmerListResponse struct {
	Farmers []FarmerDTO  `json:"farmers"`
	Page    PageResponse `json:"page"`
}

// CreateFarmerRequest body de POST /api/farmers.
type CreateFarmerRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Mobile   string `json:"mobile"`
}

// FarmerDetailResponse respuesta de GET /api/farmers/:id, con sus ciclos y métricas.
type FarmerDetailResponse struct {
	Farmer FarmerDTO  `json:"farmer"`
	Cycles []CycleDTO `json:"cycles"`
}

// Validate validación del lado del cliente antes de cualquier ida a la red.
func (r CreateFarmerRequest) Validate() string {
	if r.Name == "" {
		return "el nombre es requerido"
	}
	if r.Mobile == "" {
		return "el número de móvil es requerido"
	}
	return ""
}
