// Package stockledger contiene los casos de uso del ledger de alimento: la
// vista con marcas de reversión y las mutaciones de recarga, traslado y
// corrección.
package stockledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/invalidate"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/production"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// UseCase casos de uso del ledger.
type UseCase struct {
	officer    remote.ScopedSources
	management remote.ManagementSources
	mutator    remote.StockMutator
	inv        *invalidate.Invalidator
}

// NewUseCase construye el caso de uso.
func NewUseCase(officer remote.ScopedSources, management remote.ManagementSources, mutator remote.StockMutator, inv *invalidate.Invalidator) *UseCase {
	return &UseCase{officer: officer, management: management, mutator: mutator, inv: inv}
}

// Ledger devuelve los movimientos del granjero con las marcas de reversión
// recomputadas sobre la lista completa.
func (uc *UseCase) Ledger(ctx context.Context, m entity.Membership, farmerID string) (*dto.StockLedgerResponse, error) {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)
	logs, err := src.ListStockLogs(ctx, m.OrgID, farmerID)
	if err != nil {
		return nil, fmt.Errorf("stockledger: listar movimientos: %w", err)
	}

	entries := BuildView(logs)
	out := make([]dto.StockLogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockLogDTO{
			ID:          e.Log.ID,
			Type:        e.Log.Type,
			Amount:      production.FormatBags(e.Log.Amount),
			Note:        e.Log.Note,
			ReferenceID: e.Log.ReferenceID,
			CreatedAt:   e.Log.CreatedAt,
			Reverted:    e.Reverted,
			CanRevert:   e.CanRevert,
		})
	}
	return &dto.StockLedgerResponse{FarmerID: farmerID, Logs: out}, nil
}

// Restock recarga bultos al stock principal del granjero.
func (uc *UseCase) Restock(ctx context.Context, m entity.Membership, farmerID string, req dto.RestockRequest) error {
	amount, err := parsePositiveBags(req.Amount)
	if err != nil {
		return err
	}
	if _, err := uc.mutator.Restock(ctx, m.OrgID, farmerID, remote.RestockInput{Amount: amount, Note: req.Note}); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationRestock)
	return nil
}

// Transfer traslada bultos entre granjeros.
func (uc *UseCase) Transfer(ctx context.Context, m entity.Membership, req dto.TransferRequest) error {
	if req.FromFarmerID == "" || req.ToFarmerID == "" {
		return fmt.Errorf("%w: granjero origen y destino son requeridos", domain.ErrInvalidInput)
	}
	if req.FromFarmerID == req.ToFarmerID {
		return fmt.Errorf("%w: el origen y el destino no pueden ser el mismo granjero", domain.ErrInvalidInput)
	}
	amount, err := parsePositiveBags(req.Amount)
	if err != nil {
		return err
	}
	if err := uc.mutator.TransferStock(ctx, m.OrgID, remote.TransferInput{
		FromFarmerID: req.FromFarmerID,
		ToFarmerID:   req.ToFarmerID,
		Amount:       amount,
		Note:         req.Note,
	}); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationTransferStock)
	return nil
}

// Revert neutraliza un movimiento con una CORRECTION nueva que lo referencia.
// El original nunca se borra. Si el movimiento ya figura revertido en el ledger
// actual, se rechaza aquí mismo: la doble reversa ni siquiera viaja al servidor.
func (uc *UseCase) Revert(ctx context.Context, m entity.Membership, farmerID, logID, note string) error {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)
	logs, err := src.ListStockLogs(ctx, m.OrgID, farmerID)
	if err != nil {
		return fmt.Errorf("stockledger: verificar ledger: %w", err)
	}
	if RevertedIDs(logs)[logID] {
		return domain.ErrAlreadyReverted
	}

	if _, err := uc.mutator.RevertStockLog(ctx, m.OrgID, farmerID, logID, note); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationRevertLog)
	return nil
}

// parsePositiveBags interpreta una cantidad en bultos que puede llegar como
// entero o como decimal-en-string, y exige que sea positiva.
func parsePositiveBags(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: la cantidad es requerida", domain.ErrInvalidInput)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cantidad no numérica", domain.ErrInvalidInput)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return amount, nil
}
