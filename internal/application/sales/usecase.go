// Package sales contiene el caso de uso de ventas: el listado agrupado
// granjero → ciclo y las mutaciones de registro y borrado.
package sales

import (
	"context"
	"fmt"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/invalidate"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/production"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// UseCase casos de uso de ventas.
type UseCase struct {
	officer    remote.ScopedSources
	management remote.ManagementSources
	mutator    remote.SaleMutator
	inv        *invalidate.Invalidator
}

// NewUseCase construye el caso de uso.
func NewUseCase(officer remote.ScopedSources, management remote.ManagementSources, mutator remote.SaleMutator, inv *invalidate.Invalidator) *UseCase {
	return &UseCase{officer: officer, management: management, mutator: mutator, inv: inv}
}

// ListGrouped consulta los registros planos del alcance activo y los agrupa
// para la pantalla de ventas.
func (uc *UseCase) ListGrouped(ctx context.Context, m entity.Membership, req dto.PageRequest, selected *string) (*dto.SalesGroupedResponse, error) {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)
	records, next, err := src.ListSales(ctx, session.BuildFilter(m, req, selected))
	if err != nil {
		return nil, fmt.Errorf("sales: listar ventas: %w", err)
	}

	groups := GroupByFarmer(records)
	out := make([]dto.FarmerSalesGroupDTO, 0, len(groups))
	for _, fg := range groups {
		cyclesOut := make([]dto.CycleSalesGroupDTO, 0, len(fg.Cycles))
		for _, cg := range fg.Cycles {
			salesOut := make([]dto.SaleDTO, 0, len(cg.Sales))
			for _, s := range cg.Sales {
				salesOut = append(salesOut, dto.SaleDTO{
					ID:        s.ID,
					BirdsSold: s.BirdsSold,
					SaleDate:  s.SaleDate,
				})
			}
			cyclesOut = append(cyclesOut, dto.CycleSalesGroupDTO{
				CycleKey:     cg.Key,
				DOC:          cg.DOC,
				Age:          cg.Age,
				TotalSold:    cg.TotalSold,
				SoldPercent:  production.FormatRatio(production.SoldPercent(cg.TotalSold, cg.DOC), cg.DOC > 0),
				IsEnded:      cg.IsEnded,
				AnchorSaleID: cg.Anchor().ID,
				Sales:        salesOut,
			})
		}
		out = append(out, dto.FarmerSalesGroupDTO{
			FarmerID:   fg.FarmerID,
			FarmerName: fg.FarmerName,
			Cycles:     cyclesOut,
		})
	}

	return &dto.SalesGroupedResponse{
		Farmers: out,
		Page:    dto.PageResponse{PageSize: req.PageSize, NextCursor: next},
	}, nil
}

// Record registra una venta sobre un ciclo vivo.
func (uc *UseCase) Record(ctx context.Context, m entity.Membership, cycleID string, req dto.RecordSaleRequest) error {
	if msg := req.Validate(); msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	_, err := uc.mutator.RecordSale(ctx, m.OrgID, cycleID, remote.SaleInput{
		BirdsSold: req.BirdsSold,
		SaleDate:  req.SaleDate,
	})
	if err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationRecordSale)
	return nil
}

// Delete borra un registro de venta. La pantalla borra por el ancla del grupo
// (el primer registro del ciclo en orden de entrada), de ahí que el agrupado
// preserve esa posición.
func (uc *UseCase) Delete(ctx context.Context, m entity.Membership, saleID string) error {
	if saleID == "" {
		return fmt.Errorf("%w: id de venta requerido", domain.ErrInvalidInput)
	}
	if err := uc.mutator.DeleteSale(ctx, m.OrgID, saleID); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationDeleteSale)
	return nil
}
