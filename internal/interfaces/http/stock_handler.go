package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/stockledger"
)

// StockHandler maneja el ledger de alimento (protegido).
type StockHandler struct {
	uc *stockledger.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stockledger.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Ledger godoc
// @Summary      Ledger de alimento del granjero con marcas de reversión
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del granjero"
// @Success      200  {object}  dto.StockLedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmers/{id}/stock-logs [get]
func (h *StockHandler) Ledger(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Ledger(c.Context(), GetMembership(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Recargar bultos al stock principal
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del granjero"
// @Param        body  body  dto.RestockRequest  true  "Cantidad en bultos"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/farmers/{id}/restock [post]
func (h *StockHandler) Restock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var req dto.RestockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Restock(c.Context(), GetMembership(c), id, req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transfer godoc
// @Summary      Trasladar bultos entre granjeros
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.TransferRequest  true  "Origen, destino y cantidad"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/transfers [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Transfer(c.Context(), GetMembership(c), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Revert godoc
// @Summary      Revertir un movimiento del ledger (crea una CORRECTION)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Param        id     path  string  true  "ID del granjero"
// @Param        logId  path  string  true  "ID del movimiento a revertir"
// @Param        body   body  dto.RevertLogRequest  false  "Nota opcional"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "El movimiento ya fue revertido"
// @Router       /api/farmers/{id}/stock-logs/{logId}/revert [post]
func (h *StockHandler) Revert(c *fiber.Ctx) error {
	farmerID := c.Params("id")
	logID := c.Params("logId")
	if farmerID == "" || logID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y logId son requeridos"})
	}
	var req dto.RevertLogRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Revert(c.Context(), GetMembership(c), farmerID, logID, req.Note); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
