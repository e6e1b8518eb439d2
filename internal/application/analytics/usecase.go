// Package analytics casos de uso exclusivos del modo gerencial: el dashboard de
// la organización y la administración de miembros.
package analytics

import (
	"context"
	"fmt"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/invalidate"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/production"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// UseCase casos de uso gerenciales.
type UseCase struct {
	management remote.ManagementSources
	mutator    remote.MemberMutator
	inv        *invalidate.Invalidator
}

// NewUseCase construye el caso de uso.
func NewUseCase(management remote.ManagementSources, mutator remote.MemberMutator, inv *invalidate.Invalidator) *UseCase {
	return &UseCase{management: management, mutator: mutator, inv: inv}
}

// Dashboard agrega la analítica de la organización, opcionalmente acotada a un
// oficial. Solo existe en modo gerencial: un oficial que lo pida recibe
// ErrForbidden, sin tocar al colaborador.
func (uc *UseCase) Dashboard(ctx context.Context, m entity.Membership, selected *string) (*dto.DashboardResponse, error) {
	if m.ActiveMode != entity.ModeManagement {
		return nil, fmt.Errorf("%w: el dashboard es solo para el modo gerencial", domain.ErrForbidden)
	}

	res, err := uc.management.GetDashboard(ctx, m.OrgID, selected)
	if err != nil {
		return nil, fmt.Errorf("consultando dashboard: %w", err)
	}

	mortality := production.MortalityRatePct(res.TotalMortality, res.TotalPlaced)
	out := &dto.DashboardResponse{
		Farmers:        res.Farmers,
		ActiveCycles:   res.ActiveCycles,
		TotalPlaced:    res.TotalPlaced,
		TotalSold:      res.TotalSold,
		TotalMortality: res.TotalMortality,
		SoldPercent:    production.FormatRatio(production.SoldPercent(res.TotalSold, res.TotalPlaced), res.TotalPlaced > 0),
		MortalityPct:   production.FormatRatio(mortality, res.TotalPlaced > 0),
		FeedConsumed:   production.FormatBags(res.FeedConsumed),
		AvgFCR:         production.FormatRatio(res.AvgFCR, res.AvgFCR.IsPositive()),
		FCRRating:      production.FCRRating(res.AvgFCR),
		Severity:       production.MortalitySeverity(mortality),
	}
	if selected != nil {
		out.OfficerID = *selected
	}
	return out, nil
}

// ListMembers lista los miembros de la organización para la pantalla de
// aprobaciones. Solo modo gerencial.
func (uc *UseCase) ListMembers(ctx context.Context, m entity.Membership, req dto.PageRequest) (*dto.MemberListResponse, error) {
	if m.ActiveMode != entity.ModeManagement {
		return nil, fmt.Errorf("%w: la administración de miembros es solo gerencial", domain.ErrForbidden)
	}

	members, next, err := uc.management.ListMembers(ctx, remote.ListFilter{
		OrgID:    m.OrgID,
		Search:   req.Search,
		PageSize: req.PageSize,
		Cursor:   req.Cursor,
	})
	if err != nil {
		return nil, fmt.Errorf("listando miembros: %w", err)
	}

	out := make([]dto.MemberDTO, 0, len(members))
	for _, mem := range members {
		out = append(out, dto.MemberDTO{
			ID:           mem.ID,
			Name:         mem.Name,
			Email:        mem.Email,
			Role:         mem.Role,
			Status:       mem.Status,
			SupervisorID: mem.SupervisorID,
		})
	}
	return &dto.MemberListResponse{
		Members: out,
		Page:    dto.PageResponse{NextCursor: next},
	}, nil
}

// ApproveMember aprueba una membresía PENDING.
func (uc *UseCase) ApproveMember(ctx context.Context, m entity.Membership, memberID string) error {
	if m.ActiveMode != entity.ModeManagement {
		return fmt.Errorf("%w: aprobar miembros es solo gerencial", domain.ErrForbidden)
	}
	if err := uc.mutator.ApproveMember(ctx, m.OrgID, memberID); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationApproveMember)
	return nil
}

// RejectMember rechaza una membresía PENDING.
func (uc *UseCase) RejectMember(ctx context.Context, m entity.Membership, memberID string) error {
	if m.ActiveMode != entity.ModeManagement {
		return fmt.Errorf("%w: rechazar miembros es solo gerencial", domain.ErrForbidden)
	}
	if err := uc.mutator.RejectMember(ctx, m.OrgID, memberID); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationRejectMember)
	return nil
}
