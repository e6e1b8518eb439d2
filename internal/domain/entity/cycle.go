package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ciclo productivo.
const (
	CycleActive = "active"
	CyclePast   = "past"
)

// Cycle un lote productivo de un granjero: del alojamiento de pollitos al cierre.
// LiveBirds nunca se persiste; se deriva con production.LiveBirds (clampeado en 0).
type Cycle struct {
	ID        string          `json:"id"`
	FarmerID  string          `json:"farmerId"`
	BirdType  string          `json:"birdType"`
	DOC       int             `json:"doc"`       // pollitos de un día alojados
	Mortality int             `json:"mortality"` // muertes acumuladas
	BirdsSold int             `json:"birdsSold"` // aves vendidas acumuladas
	Intake    decimal.Decimal `json:"intake"`    // bultos consumidos en el ciclo
	Age       int             `json:"age"`       // días desde alojamiento
	Status    string          `json:"status"`    // active | past
	StartedAt time.Time       `json:"startedAt"`
	ClosedAt  *time.Time      `json:"closedAt,omitempty"`
}

// CycleHistory resumen de un ciclo cerrado, usado para comparaciones históricas.
type CycleHistory struct {
	ID        string          `json:"id"`
	FarmerID  string          `json:"farmerId"`
	DOC       int             `json:"doc"`
	Mortality int             `json:"mortality"`
	BirdsSold int             `json:"birdsSold"`
	Intake    decimal.Decimal `json:"intake"`
	Age       int             `json:"age"`
	FCR       decimal.Decimal `json:"fcr"`
	EPI       decimal.Decimal `json:"epi"`
}
