package remote

import (
	"time"

	"github.com/shopspring/decimal"
)

// MutationKind identifica cada mutación que el cliente puede pedirle al
// colaborador. La tabla InvalidationSets está indexada por estos valores.
type MutationKind string

const (
	MutationCreateFarmer MutationKind = "farmers.create"
	MutationUpdateFarmer MutationKind = "farmers.update"
	MutationDeleteFarmer MutationKind = "farmers.delete"

	MutationRestock       MutationKind = "stock.restock"
	MutationTransferStock MutationKind = "stock.transfer"
	MutationRevertLog     MutationKind = "stock.revertLog"

	MutationRecordMortality MutationKind = "cycles.recordMortality"
	MutationCloseCycle      MutationKind = "cycles.close"

	MutationRecordSale MutationKind = "sales.record"
	MutationDeleteSale MutationKind = "sales.delete"

	MutationPlaceFeedOrder   MutationKind = "feedOrders.place"
	MutationConfirmFeedOrder MutationKind = "feedOrders.confirm"
	MutationPlaceDOCOrder    MutationKind = "docOrders.place"
	MutationConfirmDOCOrder  MutationKind = "docOrders.confirm"
	MutationPlaceSaleOrder   MutationKind = "saleOrders.place"
	MutationConfirmSaleOrder MutationKind = "saleOrders.confirm"

	MutationApproveMember MutationKind = "members.approve"
	MutationRejectMember  MutationKind = "members.reject"
)

// ── Payloads de mutación ──────────────────────────────────────────────────────

// FarmerInput alta/edición de granjero.
type FarmerInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Mobile   string `json:"mobile"`
}

// RestockInput recarga de bultos al stock principal de un granjero.
type RestockInput struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// TransferInput traslado de bultos entre granjeros. Genera un TRANSFER_OUT en el
// origen y un TRANSFER_IN en el destino del lado del servidor.
type TransferInput struct {
	FromFarmerID string          `json:"fromFarmerId"`
	ToFarmerID   string          `json:"toFarmerId"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
}

// MortalityInput registro de mortalidad de un ciclo.
type MortalityInput struct {
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

// SaleInput registro de una venta sobre un ciclo vivo.
type SaleInput struct {
	BirdsSold int       `json:"birdsSold"`
	SaleDate  time.Time `json:"saleDate"`
}

// OrderInput creación de una orden (feed, doc o sale) en estado DRAFT.
type OrderInput struct {
	FarmerID     string           `json:"farmerId"`
	Items        []OrderItemInput `json:"items"`
	DeliveryDate *time.Time       `json:"deliveryDate,omitempty"`
}

// OrderItemInput renglón de una orden nueva.
type OrderItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}
