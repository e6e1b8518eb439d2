package dto

import "time"

// SaleDTO un registro individual de venta dentro de un grupo de ciclo.
type SaleDTO struct {
	ID        string    `json:"id"`
	BirdsSold int       `json:"birds_sold"`
	SaleDate  time.Time `json:"sale_date"`
}

// CycleSalesGroupDTO ventas de un ciclo agrupadas. TotalSold es el máximo de los
// acumulados por registro (max-merge) y AnchorSaleID el primer registro visto en
// el orden de entrada: es el que usan las operaciones de borrado.
type CycleSalesGroupDTO struct {
	CycleKey     string    `json:"cycle_key"`
	DOC          int       `json:"doc"`
	Age          int       `json:"age"`
	TotalSold    int       `json:"total_sold"`
	SoldPercent  string    `json:"sold_percent"` // dos decimales o "–"
	IsEnded      bool      `json:"is_ended"`
	AnchorSaleID string    `json:"anchor_sale_id"`
	Sales        []SaleDTO `json:"sales"`
}

// FarmerSalesGroupDTO grupo por granjero, ordenado por nombre ascendente.
type FarmerSalesGroupDTO struct {
	FarmerID   string               `json:"farmer_id"`
	FarmerName string               `json:"farmer_name"`
	Cycles     []CycleSalesGroupDTO `json:"cycles"`
}

// SalesGroupedResponse respuesta de GET /api/sales.
type SalesGroupedResponse struct {
	Farmers []FarmerSalesGroupDTO `json:"farmers"`
	Page    PageResponse          `json:"page"`
}

// RecordSaleRequest body de POST /api/cycles/:id/sales.
type RecordSaleRequest struct {
	BirdsSold int       `json:"birds_sold"`
	SaleDate  time.Time `json:"sale_date"`
}

// Validate validación del lado del cliente (rango numérico).
func (r RecordSaleRequest) Validate() string {
	if r.BirdsSold <= 0 {
		return "las aves vendidas deben ser mayores que cero"
	}
	return ""
}
