package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/cycles"
	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
)

// CycleHandler maneja los ciclos productivos (protegido).
type CycleHandler struct {
	uc      *cycles.UseCase
	filters *session.OfficerFilter
}

// NewCycleHandler construye el handler.
func NewCycleHandler(uc *cycles.UseCase, filters *session.OfficerFilter) *CycleHandler {
	return &CycleHandler{uc: uc, filters: filters}
}

// List godoc
// @Summary      Listar ciclos del alcance activo con métricas derivadas
// @Tags         cycles
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Búsqueda"
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Param        cursor     query  string  false  "Cursor de paginación"
// @Success      200  {object}  dto.CycleListResponse
// @Router       /api/cycles [get]
func (h *CycleHandler) List(c *fiber.Ctx) error {
	m := GetMembership(c)
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	req.DefaultPage()

	out, err := h.uc.List(c.Context(), m, req, h.filters.GetSelectedOfficer(m.UserID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle del ciclo con comparación histórica
// @Tags         cycles
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ciclo"
// @Success      200  {object}  dto.CycleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cycles/{id} [get]
func (h *CycleHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Detail(c.Context(), GetMembership(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordMortality godoc
// @Summary      Registrar mortalidad sobre un ciclo vivo
// @Tags         cycles
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del ciclo"
// @Param        body  body  dto.RecordMortalityRequest  true  "Cantidad de aves"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cycles/{id}/mortality [post]
func (h *CycleHandler) RecordMortality(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var req dto.RecordMortalityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RecordMortality(c.Context(), GetMembership(c), id, req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close godoc
// @Summary      Cerrar el ciclo (el servidor liquida el alimento restante)
// @Tags         cycles
// @Security     Bearer
// @Param        id  path  string  true  "ID del ciclo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cycles/{id}/close [post]
func (h *CycleHandler) Close(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Close(c.Context(), GetMembership(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
