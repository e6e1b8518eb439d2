// Package pdf implementa la generación del reporte gerencial de desempeño por
// oficial de campo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período del reporte                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Oficial | Granjeros | Ciclos | Alojadas | Vendidas   │
//	│         | % Vend | % Mort | FCR | Clasificación | IEP        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/avicampo/avicola-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPerformanceGenerator implementa reports.PerformancePDFGenerator usando
// Maroto v2.
type MarotoPerformanceGenerator struct{}

// NewMarotoPerformanceGenerator construye el generador.
func NewMarotoPerformanceGenerator() *MarotoPerformanceGenerator {
	return &MarotoPerformanceGenerator{}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPerformanceGenerator) Generate(report dto.PerformanceReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Desempeño por Oficial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, officer := range report.Officers {
		m.AddRows(officerRow(officer))
	}
	if len(report.Officers) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
			"Sin oficiales con actividad en el período.",
			props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray},
		))))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de desempeño: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + período consultado.
func headerRow(report dto.PerformanceReportResponse) core.Row {
	periodo := fmt.Sprintf("Período: %s — %s",
		report.From.Format("02/01/2006"),
		report.To.Format("02/01/2006"),
	)
	return row.New(16).Add(
		col.New(12).Add(
			text.New("REPORTE DE DESEMPEÑO POR OFICIAL DE CAMPO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de oficiales.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Oficial", 3, align.Left),
		h("Granjeros", 1, align.Center),
		h("Ciclos", 1, align.Center),
		h("Alojadas", 1, align.Right),
		h("Vendidas", 1, align.Right),
		h("% Vend", 1, align.Right),
		h("% Mort", 1, align.Right),
		h("FCR", 1, align.Right),
		h("Clasif.", 1, align.Center),
		h("IEP", 1, align.Right),
	)
}

// officerRow: una fila por oficial.
func officerRow(o dto.OfficerPerformanceDTO) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		cell(o.OfficerName, 3, align.Left),
		cell(fmt.Sprintf("%d", o.Farmers), 1, align.Center),
		cell(fmt.Sprintf("%d", o.ActiveCycles), 1, align.Center),
		cell(fmt.Sprintf("%d", o.TotalPlaced), 1, align.Right),
		cell(fmt.Sprintf("%d", o.TotalSold), 1, align.Right),
		cell(o.SoldPercent, 1, align.Right),
		cell(o.MortalityPct, 1, align.Right),
		cell(o.AvgFCR, 1, align.Right),
		cell(o.FCRRating, 1, align.Center),
		cell(o.AvgEPI, 1, align.Right),
	)
}

// footerRow: fecha de generación.
func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			"Generado el "+time.Now().Format("02/01/2006 15:04"),
			props.Text{Size: 7, Align: align.Right, Top: 2, Color: colorGray},
		)),
	)
}
