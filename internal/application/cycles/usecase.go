// Package cycles contiene los casos de uso de ciclos productivos: listado con
// métricas derivadas, detalle con comparación histórica, mortalidad y cierre.
package cycles

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

// UseCase casos de uso de ciclos.
type UseCase struct {
	officer    remote.ScopedSources
	management remote.ManagementSources
	mutator    remote.CycleMutator
	inv        *invalidate.Invalidator
}

// NewUseCase construye el caso de uso.
func NewUseCase(officer remote.ScopedSources, management remote.ManagementSources, mutator remote.CycleMutator, inv *invalidate.Invalidator) *UseCase {
	return &UseCase{officer: officer, management: management, mutator: mutator, inv: inv}
}

// List lista los ciclos del alcance activo con sus métricas derivadas.
func (uc *UseCase) List(ctx context.Context, m entity.Membership, req dto.PageRequest, selected *string) (*dto.CycleListResponse, error) {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)
	cyclesList, next, err := src.ListCycles(ctx, session.BuildFilter(m, req, selected))
	if err != nil {
		return nil, fmt.Errorf("cycles: listar: %w", err)
	}

	out := make([]dto.CycleDTO, 0, len(cyclesList))
	for _, c := range cyclesList {
		out = append(out, BuildCycleDTO(c))
	}
	return &dto.CycleListResponse{
		Cycles: out,
		Page:   dto.PageResponse{PageSize: req.PageSize, NextCursor: next},
	}, nil
}

// Detail devuelve un ciclo con su etiqueta FCR (si el colaborador reporta FCR en
// el historial del granjero) y la comparación de mortalidad contra el promedio
// de los ciclos cerrados.
func (uc *UseCase) Detail(ctx context.Context, m entity.Membership, cycleID string) (*dto.CycleDetailResponse, error) {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)
	c, err := src.GetCycle(ctx, m.OrgID, cycleID)
	if err != nil {
		return nil, fmt.Errorf("cycles: obtener ciclo: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	history, err := src.ListCycleHistory(ctx, m.OrgID, c.FarmerID)
	if err != nil {
		return nil, fmt.Errorf("cycles: historial del granjero: %w", err)
	}

	docs := make([]int, 0, len(history))
	morts := make([]int, 0, len(history))
	fcrRating := ""
	for _, h := range history {
		docs = append(docs, h.DOC)
		morts = append(morts, h.Mortality)
		if fcrRating == "" {
			fcrRating = production.FCRRating(h.FCR)
		}
	}

	current := production.MortalityRatePct(c.Mortality, c.DOC)
	cmp := production.CompareToHistory(current, production.HistoricalMortalityRates(docs, morts), true)

	return &dto.CycleDetailResponse{
		Cycle:     BuildCycleDTO(*c),
		FCRRating: fcrRating,
		Benchmark: dto.BenchmarkDTO{
			Current:       production.FormatRatio(cmp.Current, c.DOC > 0),
			HistoricalAvg: production.FormatRatio(cmp.HistoricalAvg, cmp.Verdict != production.VerdictNoHistory),
			Verdict:       cmp.Verdict,
		},
	}, nil
}

// RecordMortality registra mortalidad sobre un ciclo vivo e invalida las vistas
// dependientes. Sin actualización optimista: la pantalla refresca tras el éxito.
func (uc *UseCase) RecordMortality(ctx context.Context, m entity.Membership, cycleID string, req dto.RecordMortalityRequest) error {
	if msg := req.Validate(); msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	in := remote.MortalityInput{Count: req.Count, Note: req.Note}
	if err := uc.mutator.RecordMortality(ctx, m.OrgID, cycleID, in); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationRecordMortality)
	return nil
}

// Close cierra el ciclo; el servidor liquida el alimento restante (CYCLE_CLOSE
// en el ledger) y pasa el ciclo a histórico.
func (uc *UseCase) Close(ctx context.Context, m entity.Membership, cycleID string) error {
	if err := uc.mutator.CloseCycle(ctx, m.OrgID, cycleID); err != nil {
		return err
	}
	uc.inv.OnSuccess(ctx, remote.MutationCloseCycle)
	return nil
}

// BuildCycleDTO deriva las métricas de pantalla de un ciclo. Toda razón con
// denominador cero sale como el centinela "–".
func BuildCycleDTO(c entity.Cycle) dto.CycleDTO {
	live := production.LiveBirds(c.DOC, c.Mortality, c.BirdsSold)
	mortPct := production.MortalityRatePct(c.Mortality, c.DOC)
	return dto.CycleDTO{
		ID:             c.ID,
		FarmerID:       c.FarmerID,
		BirdType:       c.BirdType,
		DOC:            c.DOC,
		Mortality:      c.Mortality,
		BirdsSold:      c.BirdsSold,
		LiveBirds:      live,
		Age:            c.Age,
		Status:         c.Status,
		Intake:         production.FormatBags(c.Intake),
		FeedPerBird:    production.FormatRatio(production.FeedPerBird(c.Intake, live), live > 0),
		DailyAvgIntake: production.FormatRatio(production.DailyAvgIntake(c.Intake, c.Age), c.Age > 0),
		MortalityPct:   production.FormatRatio(mortPct, c.DOC > 0),
		Severity:       production.MortalitySeverity(mortPct),
	}
}
