package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalMembership    = "membership"
	LocalUserID        = "user_id"
	LocalRemoteSession = "remote_session"
)

// AuthMiddleware valida el Bearer Token JWT y deja en c.Locals la membresía
// firmada dentro del token, el userID y el token de sesión del colaborador.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRemoteSession, claims.RemoteSession)
		c.Locals(LocalMembership, entity.Membership{
			UserID:     claims.UserID,
			OrgID:      claims.OrgID,
			Role:       claims.Role,
			Status:     claims.Status,
			ActiveMode: entity.ParseViewMode(claims.Mode),
		})
		return c.Next()
	}
}

// GetMembership devuelve la membresía del contexto (después del middleware).
func GetMembership(c *fiber.Ctx) entity.Membership {
	v := c.Locals(LocalMembership)
	if v == nil {
		return entity.Membership{}
	}
	m, _ := v.(entity.Membership)
	return m
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRemoteSession devuelve el token de sesión del colaborador.
func GetRemoteSession(c *fiber.Ctx) string {
	v := c.Locals(LocalRemoteSession)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
