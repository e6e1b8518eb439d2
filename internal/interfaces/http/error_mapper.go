package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// respondError traduce errores de dominio y del colaborador al HTTP y código de
// la respuesta. El mensaje del colaborador se reenvía tal cual: es el texto que
// la UI muestra en banners y toasts.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyReverted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVERTED", Message: err.Error()})
	case errors.Is(err, domain.ErrOrderNotDraft):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_NOT_DRAFT", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}

	var remoteErr *remote.Error
	if errors.As(err, &remoteErr) {
		code := "REMOTE"
		if remoteErr.IsClientFault() {
			code = "REMOTE_REJECTED"
		}
		return c.Status(remoteErr.StatusCode).JSON(dto.ErrorResponse{Code: code, Message: remoteErr.Error()})
	}

	// Errores inesperados: el detalle va al log, nunca al cliente.
	log.Error().Err(err).Str("path", c.Path()).Msg("Error inesperado atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error inesperado, inténtalo de nuevo"})
}
