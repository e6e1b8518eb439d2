package dto

import "time"

// OrderItemDTO renglón de una orden.
type OrderItemDTO struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// OrderDTO orden de alimento, pollitos o venta.
type OrderDTO struct {
	ID           string         `json:"id"`
	FarmerID     string         `json:"farmer_id"`
	Type         string         `json:"type"`
	Status       string         `json:"status"`
	Items        []OrderItemDTO `json:"items"`
	OrderDate    time.Time      `json:"order_date"`
	DeliveryDate *time.Time     `json:"delivery_date,omitempty"`
}

// OrdersOverviewResponse respuesta de GET /api/orders: los tres tipos se
// consultan en paralelo y cada sección conserva su propio estado de error, para
// que una falla no bloquee a las otras.
type OrdersOverviewResponse struct {
	Feed OrderSection `json:"feed"`
	DOC  OrderSection `json:"doc"`
	Sale OrderSection `json:"sale"`
}

// OrderSection resultado independiente de una de las tres consultas de órdenes.
type OrderSection struct {
	Orders []OrderDTO `json:"orders"`
	Error  string     `json:"error,omitempty"`
}

// PlaceOrderRequest body de POST /api/orders/:type.
type PlaceOrderRequest struct {
	FarmerID     string              `json:"farmer_id"`
	Items        []PlaceOrderItemDTO `json:"items"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
}

// PlaceOrderItemDTO renglón de una orden nueva; cantidades como string para
// aceptar entero o decimal.
type PlaceOrderItemDTO struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// Validate validación del lado del cliente antes de la mutación.
func (r PlaceOrderRequest) Validate() string {
	if r.FarmerID == "" {
		return "el granjero es requerido"
	}
	if len(r.Items) == 0 {
		return "la orden necesita al menos un renglón"
	}
	return ""
}
