package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/analytics"
	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
)

// AnalyticsHandler maneja el dashboard gerencial y los miembros (protegido).
type AnalyticsHandler struct {
	uc      *analytics.UseCase
	filters *session.OfficerFilter
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase, filters *session.OfficerFilter) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, filters: filters}
}

// Dashboard godoc
// @Summary      Analítica de la organización (solo modo gerencial)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	m := GetMembership(c)
	out, err := h.uc.Dashboard(c.Context(), m, h.filters.GetSelectedOfficer(m.UserID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMembers godoc
// @Summary      Miembros de la organización (solo modo gerencial)
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Param        cursor     query  string  false  "Cursor de paginación"
// @Success      200  {object}  dto.MemberListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/members [get]
func (h *AnalyticsHandler) ListMembers(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	req.DefaultPage()

	out, err := h.uc.ListMembers(c.Context(), GetMembership(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApproveMember godoc
// @Summary      Aprobar una membresía pendiente
// @Tags         members
// @Security     Bearer
// @Param        id  path  string  true  "ID del miembro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/members/{id}/approve [post]
func (h *AnalyticsHandler) ApproveMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.ApproveMember(c.Context(), GetMembership(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RejectMember godoc
// @Summary      Rechazar una membresía pendiente
// @Tags         members
// @Security     Bearer
// @Param        id  path  string  true  "ID del miembro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/members/{id}/reject [post]
func (h *AnalyticsHandler) RejectMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.RejectMember(c.Context(), GetMembership(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
