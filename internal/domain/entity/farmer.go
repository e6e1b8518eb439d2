package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un granjero.
const (
	FarmerActive  = "active"
	FarmerDeleted = "deleted"
)

// Farmer representa un granjero atendido por un oficial de campo.
// MainStock es el saldo corriente de bultos de alimento; lo mantiene el servidor,
// aquí solo se refleja. Varios campos numéricos llegan del colaborador como entero
// o como decimal-en-string; decimal.Decimal acepta ambos al deserializar.
type Farmer struct {
	ID              string          `json:"id"`
	OrgID           string          `json:"orgId"`
	OfficerID       string          `json:"officerId"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Mobile          string          `json:"mobile"`
	MainStock       decimal.Decimal `json:"mainStock"`       // bultos en mano
	ProblematicFeed decimal.Decimal `json:"problematicFeed"` // bultos observados/dañados
	TotalConsumed   decimal.Decimal `json:"totalConsumed"`   // bultos consumidos acumulados
	Status          string          `json:"status"`          // active | deleted
	CreatedAt       time.Time       `json:"createdAt"`
}
