package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger de alimento.
const (
	StockLogRestock     = "RESTOCK"
	StockLogTransferIn  = "TRANSFER_IN"
	StockLogTransferOut = "TRANSFER_OUT"
	StockLogCorrection  = "CORRECTION"
	StockLogCycleClose  = "CYCLE_CLOSE"
)

// StockLog un movimiento del ledger de alimento de un granjero.
// Amount es un delta con signo en bultos. Una CORRECTION nunca borra el movimiento
// original: lo neutraliza apuntándolo con ReferenceID.
type StockLog struct {
	ID          string          `json:"id"`
	FarmerID    string          `json:"farmerId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // con signo, en bultos
	Note        string          `json:"note,omitempty"`
	ReferenceID string          `json:"referenceId,omitempty"` // movimiento que esta corrección revierte
	CreatedBy   string          `json:"createdBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IsCorrection informa si el movimiento neutraliza a otro.
func (l StockLog) IsCorrection() bool {
	return l.Type == StockLogCorrection && l.ReferenceID != ""
}
