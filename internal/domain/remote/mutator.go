package remote

import (
	"context"

	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// FarmerMutator mutaciones sobre granjeros.
type FarmerMutator interface {
	CreateFarmer(ctx context.Context, orgID string, in FarmerInput) (*entity.Farmer, error)
	UpdateFarmer(ctx context.Context, orgID, farmerID string, in FarmerInput) (*entity.Farmer, error)
	DeleteFarmer(ctx context.Context, orgID, farmerID string) error
}

// StockMutator mutaciones sobre el ledger de alimento. RevertStockLog crea un
// movimiento CORRECTION nuevo que apunta al original; nunca borra nada.
type StockMutator interface {
	Restock(ctx context.Context, orgID, farmerID string, in RestockInput) (*entity.StockLog, error)
	TransferStock(ctx context.Context, orgID string, in TransferInput) error
	RevertStockLog(ctx context.Context, orgID, farmerID, logID, note string) (*entity.StockLog, error)
}

// CycleMutator mutaciones sobre ciclos.
type CycleMutator interface {
	RecordMortality(ctx context.Context, orgID, cycleID string, in MortalityInput) error
	CloseCycle(ctx context.Context, orgID, cycleID string) error
}

// SaleMutator mutaciones sobre ventas.
type SaleMutator interface {
	RecordSale(ctx context.Context, orgID, cycleID string, in SaleInput) (*entity.SaleRecord, error)
	DeleteSale(ctx context.Context, orgID, saleID string) error
}

// OrderMutator mutaciones sobre órdenes. Confirm pasa DRAFT → CONFIRMED; los
// efectos colaterales (mover MainStock, crear ciclos) son del servidor.
type OrderMutator interface {
	PlaceOrder(ctx context.Context, orgID, orderType string, in OrderInput) (*entity.Order, error)
	ConfirmOrder(ctx context.Context, orgID, orderType, orderID string) (*entity.Order, error)
}

// MemberMutator mutaciones gerenciales sobre membresías.
type MemberMutator interface {
	ApproveMember(ctx context.Context, orgID, memberID string) error
	RejectMember(ctx context.Context, orgID, memberID string) error
}

// Mutator unión de todas las mutaciones que expone el colaborador.
type Mutator interface {
	FarmerMutator
	StockMutator
	CycleMutator
	SaleMutator
	OrderMutator
	MemberMutator
}
