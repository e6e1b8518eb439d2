// Package farmers contiene los casos de uso de granjeros: listado por alcance,
// detalle con ciclos y las mutaciones de alta, edición y baja.
package farmers

import (
	"context"
	"fmt"

	"github.com/avicampo/avicola-api/internal/application/cycles"
	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/invalidate"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/production"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// UseCase casos de uso de granjeros.
type UseCase struct {
	officer    remote.ScopedSources
	management remote.ManagementSources
	mutator    remote.FarmerMutator
	inv        *invalidate.Invalidator
}

// NewUseCase construye el caso de uso.
func NewUseCase(officer remote.ScopedSources, management remote.ManagementSources, mutator remote.FarmerMutator, inv *invalidate.Invalidator) *UseCase {
	return &UseCase{officer: officer, management: management, mutator: mutator, inv: inv}
}

// List lista granjeros del alcance activo. El modo se resuelve UNA vez aquí;
// el render posterior es agnóstico de si la fuente fue oficial o gerencial.
func (uc *UseCase) List(ctx context.Context, m entity.Membership, req dto.PageRequest, selected *string) (*dto.FarmerListResponse, error) {
	req.Search = NormalizeSearch(req.Search)
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)

	farmersList, next, err := src.ListFarmers(ctx, session.BuildFilter(m, req, selected))
	if err != nil {
		return nil, fmt.Errorf("farmers: listar: %w", err)
	}

	out := make([]dto.FarmerDTO, 0, len(farmersList))
	for _, f := range farmersList {
		out = append(out, toFarmerDTO(f))
	}
	return &dto.FarmerListResponse{
		Farmers: out,
		Page:    dto.PageResponse{PageSize: req.PageSize, NextCursor: next},
	}, nil
}

// Detail devuelve el granjero con sus ciclos y métricas derivadas.
func (uc *UseCase) Detail(ctx context.Context, m entity.Membership, farmerID string) (*dto.FarmerDetailResponse, error) {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)

	farmer, err := src.GetFarmer(ctx, m.OrgID, farmerID)
	if err != nil {
		return nil, fmt.Errorf("farmers: obtener granjero: %w", err)
	}
	if farmer == nil {
		return nil, domain.ErrNotFound
	}

	cyclesList, _, err := src.ListCycles(ctx, remote.ListFilter{OrgID: m.OrgID, FarmerID: farmerID})
	if err != nil {
		return nil, fmt.Errorf("farmers: ciclos del granjero: %w", err)
	}

	cycleDTOs := make([]dto.CycleDTO, 0, len(cyclesList))
	for _, c := range cyclesList {
		cycleDTOs = append(cycleDTOs, cycles.BuildCycleDTO(c))
	}

	return &dto.FarmerDetailResponse{Farmer: toFarmerDTO(*farmer), Cycles: cycleDTOs}, nil
}

// Create da de alta un granjero e invalida los listados de ambos alcances.
func (uc *UseCase) Create(ctx context.Context, m entity.Membership, req dto.CreateFarmerRequest) (*dto.FarmerDTO, error) {
	if msg := req.Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	farmer, err := uc.mutator.CreateFarmer(ctx, m.OrgID, remote.FarmerInput{
		Name:     req.Name,
		Location: req.Location,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return nil, err
	}
	uc.inv.OnSuccess(ctx, remote.MutationCreateFarmer)
	out := toFarmerDTO(*farmer)
	return &out, nil
}

// Update edita los datos de contacto del granjero.
func (uc *UseCase) Update(ctx context.Context, m entity.Membership, farmerID string, req dto.CreateFarmerRequest) (*dto.FarmerDTO, error) {
	if msg := req.Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	farmer, err := uc.mutator.UpdateFarmer(ctx, m.OrgID, farmerID, remote.FarmerInput{
		Name:     req.Name,
		Location: req.Location,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return nil, err
	}
	uc.inv.OnSuccess(ctx, remote.MutationUpdateFarmer)
	out := toFarmerDTO(*farmer)
	return &out, nil
}

// Delete marca el granjero como eliminado (borrado lógico del lado del servidor).
func (uc *UseCase) Delete(ctx context.Context, m entity.Membership, farmerID string) error {
	if err := uc.mutator.DeleteFarmer(ctx, m.OrgID, farmerID); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationDeleteFarmer)
	return nil
}

func toFarmerDTO(f entity.Farmer) dto.FarmerDTO {
	return dto.FarmerDTO{
		ID:              f.ID,
		Name:            f.Name,
		Location:        f.Location,
		Mobile:          f.Mobile,
		OfficerID:       f.OfficerID,
		MainStock:       production.FormatBags(f.MainStock),
		ProblematicFeed: production.FormatBags(f.ProblematicFeed),
		TotalConsumed:   production.FormatBags(f.TotalConsumed),
		Status:          f.Status,
	}
}
