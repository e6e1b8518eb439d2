package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/orders"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// OrderHandler maneja las órdenes de alimento, pollitos y venta (protegido).
type OrderHandler struct {
	uc      *orders.UseCase
	filters *session.OfficerFilter
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase, filters *session.OfficerFilter) *OrderHandler {
	return &OrderHandler{uc: uc, filters: filters}
}

func validOrderType(t string) bool {
	return t == entity.OrderFeed || t == entity.OrderDOC || t == entity.OrderSale
}

// Overview godoc
// @Summary      Resumen de los tres tipos de orden (consultas paralelas)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Param        cursor     query  string  false  "Cursor de paginación"
// @Success      200  {object}  dto.OrdersOverviewResponse
// @Router       /api/orders [get]
func (h *OrderHandler) Overview(c *fiber.Ctx) error {
	m := GetMembership(c)
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	req.DefaultPage()

	out, err := h.uc.Overview(c.Context(), m, req, h.filters.GetSelectedOfficer(m.UserID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Place godoc
// @Summary      Crear una orden en estado DRAFT
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string  true  "Tipo de orden"  Enums(feed, doc, sale)
// @Param        body  body  dto.PlaceOrderRequest  true  "Granjero y renglones"
// @Success      201   {object}  dto.OrderDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{type} [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	orderType := c.Params("type")
	if !validOrderType(orderType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "tipo de orden desconocido"})
	}
	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Place(c.Context(), GetMembership(c), orderType, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Confirm godoc
// @Summary      Confirmar una orden DRAFT
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "Tipo de orden"  Enums(feed, doc, sale)
// @Param        id    path  string  true  "ID de la orden"
// @Success      200   {object}  dto.OrderDTO
// @Failure      409   {object}  dto.ErrorResponse  "La orden ya fue confirmada"
// @Router       /api/orders/{type}/{id}/confirm [post]
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	orderType := c.Params("type")
	orderID := c.Params("id")
	if !validOrderType(orderType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "tipo de orden desconocido"})
	}
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Confirm(c.Context(), GetMembership(c), orderType, orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
