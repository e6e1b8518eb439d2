package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
)

// MembershipGate bloquea las pantallas de negocio según el estado de la
// membresía: solo ACTIVE pasa. Las demás reciben el código que la UI usa para
// decidir su pantalla de espera (sin organización, pendiente o rechazada).
func MembershipGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m := GetMembership(c)
		if err := session.Gate(m); err != nil {
			switch {
			case errors.Is(err, domain.ErrNoOrganization):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ORG", Message: err.Error()})
			case errors.Is(err, domain.ErrMembershipPending):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MEMBERSHIP_PENDING", Message: err.Error()})
			case errors.Is(err, domain.ErrMembershipRejected):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MEMBERSHIP_REJECTED", Message: err.Error()})
			default:
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
			}
		}
		return c.Next()
	}
}
