package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/pkg/jwt"
)

// SessionHandler maneja la sesión, el modo de vista y el filtro de oficial.
type SessionHandler struct {
	resolver *session.Resolver
	filters  *session.OfficerFilter
	authUC   *auth.UseCase
	guard    *CallbackGuard
	secret   string
}

// NewSessionHandler construye el handler.
func NewSessionHandler(resolver *session.Resolver, filters *session.OfficerFilter, authUC *auth.UseCase, guard *CallbackGuard, secret string) *SessionHandler {
	return &SessionHandler{resolver: resolver, filters: filters, authUC: authUC, guard: guard, secret: secret}
}

// bearerClaims extrae y valida el JWT del header, sin middleware: la consulta
// de sesión decide por sí misma qué responder cuando no hay token.
func (h *SessionHandler) bearerClaims(c *fiber.Ctx) *jwt.Claims {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	claims, err := jwt.Parse(h.secret, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}
	return claims
}

// Get godoc
// @Summary      Sesión y membresía actuales
// @Description  Sin sesión: 401, salvo dentro de la ventana de gracia posterior
// @Description  a un callback OAuth, donde responde 202 para que la UI espere
// @Description  en lugar de redirigir al login.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Success      202  {object}  dto.ErrorResponse  "Callback en curso"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	claims := h.bearerClaims(c)
	if claims == nil {
		if h.guard.InGrace() {
			return c.Status(fiber.StatusAccepted).JSON(dto.ErrorResponse{Code: "CALLBACK_IN_PROGRESS", Message: "autenticación en curso"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "sin sesión"})
	}

	// membresía fresca desde el colaborador, no la copia firmada en el token
	info, err := h.resolver.Resolve(c.Context(), claims.RemoteSession)
	if err != nil {
		// La gracia solo cubre "todavía sin sesión"; una caída real del
		// colaborador se responde como tal.
		if errors.Is(err, domain.ErrUnauthorized) && h.guard.InGrace() {
			return c.Status(fiber.StatusAccepted).JSON(dto.ErrorResponse{Code: "CALLBACK_IN_PROGRESS", Message: "autenticación en curso"})
		}
		return respondError(c, err)
	}
	out := session.ToSessionResponse(info)
	out.ActiveMode = claims.Mode
	return c.JSON(out)
}

// Callback godoc
// @Summary      Retorno del proveedor OAuth
// @Description  Detecta code=/error= y abre la ventana de gracia de la sesión.
// @Tags         session
// @Param        code   query  string  false  "Código de autorización"
// @Param        error  query  string  false  "Error del proveedor"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/callback [get]
func (h *SessionHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	errParam := c.Query("error")
	if !IsCallback(code, errParam) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_A_CALLBACK", Message: "se esperaba code o error en el query"})
	}
	h.guard.Mark()
	if errParam != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PROVIDER_ERROR", Message: errParam})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetOfficerFilter godoc
// @Summary      Oficial seleccionado del filtro gerencial
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OfficerFilterResponse
// @Router       /api/session/officer-filter [get]
func (h *SessionHandler) GetOfficerFilter(c *fiber.Ctx) error {
	return c.JSON(dto.OfficerFilterResponse{OfficerID: h.filters.GetSelectedOfficer(GetUserID(c))})
}

// SetOfficerFilter godoc
// @Summary      Fijar (o limpiar, con null) el oficial seleccionado
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.OfficerFilterRequest  true  "null = todos los oficiales"
// @Success      204
// @Router       /api/session/officer-filter [put]
func (h *SessionHandler) SetOfficerFilter(c *fiber.Ctx) error {
	var req dto.OfficerFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.filters.SetSelectedOfficer(GetUserID(c), req.OfficerID)
	return c.SendStatus(fiber.StatusNoContent)
}

// SwitchMode godoc
// @Summary      Cambiar el modo de vista activo (reemite el token)
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchModeRequest  true  "MANAGEMENT u OFFICER"
// @Success      200   {object}  dto.TokenResponse
// @Failure      403   {object}  dto.ErrorResponse  "Rol sin acceso gerencial"
// @Router       /api/session/mode [put]
func (h *SessionHandler) SwitchMode(c *fiber.Ctx) error {
	var req dto.SwitchModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	remoteSession := GetRemoteSession(c)
	info, err := h.resolver.Resolve(c.Context(), remoteSession)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.authUC.SwitchMode(info, remoteSession, entity.ParseViewMode(req.Mode))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
