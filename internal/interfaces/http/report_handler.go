package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/reports"
)

// ReportHandler maneja el reporte de desempeño y su exportación (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parsePeriod lee from/to (RFC 3339 o fecha corta); vacío = últimos 30 días.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	parse := func(raw string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", raw)
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = parse(raw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = parse(raw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

// Performance godoc
// @Summary      Desempeño por oficial en el período (solo modo gerencial)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inicio del período (RFC3339 o AAAA-MM-DD)"
// @Param        to    query  string  false  "Fin del período"
// @Success      200  {object}  dto.PerformanceReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/performance [get]
func (h *ReportHandler) Performance(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "período inválido"})
	}
	out, err := h.uc.Performance(c.Context(), GetMembership(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el reporte de desempeño a PDF
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportReportRequest  true  "Período del reporte"
// @Success      201   {object}  dto.ExportReportResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reports/performance/export [post]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.From.IsZero() || req.To.IsZero() {
		req.To = time.Now()
		req.From = req.To.AddDate(0, 0, -30)
	}
	out, err := h.uc.Export(c.Context(), GetMembership(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
