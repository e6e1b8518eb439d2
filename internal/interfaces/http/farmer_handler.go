package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/farmers"
	"github.com/avicampo/avicola-api/internal/application/session"
)

// FarmerHandler maneja las peticiones HTTP de granjeros (protegido).
type FarmerHandler struct {
	uc      *farmers.UseCase
	filters *session.OfficerFilter
}

// NewFarmerHandler construye el handler.
func NewFarmerHandler(uc *farmers.UseCase, filters *session.OfficerFilter) *FarmerHandler {
	return &FarmerHandler{uc: uc, filters: filters}
}

// List godoc
// @Summary      Listar granjeros del alcance activo
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Búsqueda por nombre (insensible a tildes)"
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Param        cursor     query  string  false  "Cursor de paginación"
// @Success      200  {object}  dto.FarmerListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/farmers [get]
func (h *FarmerHandler) List(c *fiber.Ctx) error {
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
// @Summary      Detalle del granjero con sus ciclos y métricas
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del granjero"
// @Success      200  {object}  dto.FarmerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmers/{id} [get]
func (h *FarmerHandler) Detail(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Dar de alta un granjero
// @Tags         farmers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFarmerRequest  true  "Datos del granjero"
// @Success      201   {object}  dto.FarmerDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/farmers [post]
func (h *FarmerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFarmerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetMembership(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar los datos del granjero
// @Tags         farmers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del granjero"
// @Param        body  body  dto.CreateFarmerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FarmerDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/farmers/{id} [put]
func (h *FarmerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var req dto.CreateFarmerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetMembership(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Dar de baja un granjero
// @Tags         farmers
// @Security     Bearer
// @Param        id  path  string  true  "ID del granjero"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmers/{id} [delete]
func (h *FarmerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetMembership(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
