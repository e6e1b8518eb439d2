package dto

import "time"

// StockLogDTO un movimiento del ledger con su marca de reversión derivada.
// Reverted y CanRevert se recomputan en cada consulta sobre la lista completa;
// nunca se persisten del lado del cliente.
type StockLogDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"` // bultos con signo, un decimal
	Note        string    `json:"note,omitempty"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Reverted    bool      `json:"reverted"`   // una CORRECTION presente lo apunta
	CanRevert   bool      `json:"can_revert"` // falso para correcciones y revertidos
}

// StockLedgerResponse respuesta de GET /api/farmers/:id/stock-logs.
type StockLedgerResponse struct {
	FarmerID string        `json:"farmer_id"`
	Logs     []StockLogDTO `json:"logs"`
}

// RestockRequest body de POST /api/farmers/:id/restock.
type RestockRequest struct {
	Amount string `json:"amount"` // bultos; acepta entero o decimal-en-string
	Note   string `json:"note,omitempty"`
}

// TransferRequest body de POST /api/stock/transfers.
type TransferRequest struct {
	FromFarmerID string `json:"from_farmer_id"`
	ToFarmerID   string `json:"to_farmer_id"`
	Amount       string `json:"amount"`
	Note         string `json:"note,omitempty"`
}

// RevertLogRequest body de POST /api/farmers/:id/stock-logs/:logId/revert.
type RevertLogRequest struct {
	Note string `json:"note,omitempty"`
}
