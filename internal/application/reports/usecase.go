// Package reports caso de uso gerencial del reporte de desempeño por oficial y
// su exportación a PDF en el directorio autorizado de la aplicación.
package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/production"
	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// UseCase caso de uso de reportes gerenciales.
type UseCase struct {
	management remote.ManagementSources
	pdf        PerformancePDFGenerator
	exportDir  string
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(management remote.ManagementSources, pdf PerformancePDFGenerator, exportDir string, log *logger.Logger) *UseCase {
	return &UseCase{management: management, pdf: pdf, exportDir: exportDir, log: log}
}

// Performance consulta el desempeño agregado por oficial para el período dado.
// Solo modo gerencial.
func (uc *UseCase) Performance(ctx context.Context, m entity.Membership, from, to time.Time) (*dto.PerformanceReportResponse, error) {
	if m.ActiveMode != entity.ModeManagement {
		return nil, fmt.Errorf("%w: el reporte de desempeño es solo gerencial", domain.ErrForbidden)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: el fin del período es anterior al inicio", domain.ErrInvalidInput)
	}

	rows, err := uc.management.ListOfficerPerformance(ctx, m.OrgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("consultando desempeño: %w", err)
	}

	officers := make([]dto.OfficerPerformanceDTO, 0, len(rows))
	for _, r := range rows {
		officers = append(officers, toPerformanceDTO(r))
	}
	return &dto.PerformanceReportResponse{From: from, To: to, Officers: officers}, nil
}

// Export genera el PDF del reporte y lo escribe en el directorio de exportación
// con un nombre único. Devuelve ruta y nombre del archivo escrito.
func (uc *UseCase) Export(ctx context.Context, m entity.Membership, req dto.ExportReportRequest) (*dto.ExportReportResponse, error) {
	report, err := uc.Performance(ctx, m, req.From, req.To)
	if err != nil {
		return nil, err
	}

	payload, err := uc.pdf.Generate(*report)
	if err != nil {
		return nil, fmt.Errorf("generando PDF de desempeño: %w", err)
	}

	if err := os.MkdirAll(uc.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("preparando directorio de exportación: %w", err)
	}
	filename := fmt.Sprintf("desempeno_%s_%s.pdf", req.From.Format("20060102"), uuid.NewString()[:8])
	path := filepath.Join(uc.exportDir, filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return nil, fmt.Errorf("escribiendo PDF: %w", err)
	}

	uc.log.Info().Str("path", path).Int("officers", len(report.Officers)).Msg("Reporte de desempeño exportado")
	return &dto.ExportReportResponse{Filename: filename, Path: path}, nil
}

func toPerformanceDTO(r entity.OfficerPerformance) dto.OfficerPerformanceDTO {
	mortality := production.MortalityRatePct(r.Mortality, r.TotalPlaced)
	return dto.OfficerPerformanceDTO{
		OfficerID:    r.OfficerID,
		OfficerName:  r.OfficerName,
		Farmers:      r.Farmers,
		ActiveCycles: r.ActiveCycles,
		TotalPlaced:  r.TotalPlaced,
		TotalSold:    r.TotalSold,
		SoldPercent:  production.FormatRatio(production.SoldPercent(r.TotalSold, r.TotalPlaced), r.TotalPlaced > 0),
		MortalityPct: production.FormatRatio(mortality, r.TotalPlaced > 0),
		AvgFCR:       production.FormatRatio(r.AvgFCR, r.AvgFCR.IsPositive()),
		FCRRating:    production.FCRRating(r.AvgFCR),
		AvgEPI:       production.FormatRatio(r.AvgEPI, r.AvgEPI.IsPositive()),
	}
}
