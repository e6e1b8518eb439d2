package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden.
const (
	OrderFeed = "feed"
	OrderDOC  = "doc"
	OrderSale = "sale"
)

// Estados de una orden.
const (
	OrderDraft     = "DRAFT"
	OrderConfirmed = "CONFIRMED"
)

// OrderItem renglón de una orden.
type OrderItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order una orden de alimento, pollitos o venta. Confirmar una orden feed/doc es
// el disparador que mueve Farmer.MainStock o crea ciclos del lado del servidor;
// el cliente solo invalida y vuelve a consultar.
type Order struct {
	ID           string      `json:"id"`
	OrgID        string      `json:"orgId"`
	FarmerID     string      `json:"farmerId"`
	Type         string      `json:"type"`   // feed | doc | sale
	Status       string      `json:"status"` // DRAFT | CONFIRMED
	Items        []OrderItem `json:"items"`
	OrderDate    time.Time   `json:"orderDate"`
	DeliveryDate *time.Time  `json:"deliveryDate,omitempty"`
}
