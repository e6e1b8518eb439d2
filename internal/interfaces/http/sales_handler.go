package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/sales"
	"github.com/avicampo/avicola-api/internal/application/session"
)

// SalesHandler maneja la vista agrupada de ventas y sus mutaciones (protegido).
type SalesHandler struct {
	uc      *sales.UseCase
	filters *session.OfficerFilter
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase, filters *session.OfficerFilter) *SalesHandler {
	return &SalesHandler{uc: uc, filters: filters}
}

// ListGrouped godoc
// @Summary      Ventas agrupadas granjero → ciclo
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Búsqueda por granjero"
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Param        cursor     query  string  false  "Cursor de paginación"
// @Success      200  {object}  dto.SalesGroupedResponse
// @Router       /api/sales [get]
func (h *SalesHandler) ListGrouped(c *fiber.Ctx) error {
	m := GetMembership(c)
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	req.DefaultPage()

	out, err := h.uc.ListGrouped(c.Context(), m, req, h.filters.GetSelectedOfficer(m.UserID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Registrar una venta sobre un ciclo vivo
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del ciclo"
// @Param        body  body  dto.RecordSaleRequest  true  "Aves vendidas y fecha"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cycles/{id}/sales [post]
func (h *SalesHandler) Record(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var req dto.RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Record(c.Context(), GetMembership(c), id, req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar una venta (por el id ancla del grupo)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID de la venta ancla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetMembership(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
