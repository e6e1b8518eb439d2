package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/application/dto"
)

// AuthHandler maneja los flujos de autenticación (público, salvo sign-out).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp godoc
// @Summary      Registrar una cuenta (el colaborador envía el código OTP)
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.SignUpRequest  true  "Email, nombre y contraseña"
// @Success      202
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SignUp(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// VerifyOTP godoc
// @Summary      Verificar el código de 6 dígitos y emitir el token de sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOTPRequest  true  "Email y código"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.VerifyOTP(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RequestPasswordReset godoc
// @Summary      Iniciar el restablecimiento de contraseña
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.PasswordResetRequest  true  "Email de la cuenta"
// @Success      202
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// ConfirmPasswordReset godoc
// @Summary      Confirmar el restablecimiento con código y contraseña nueva
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.PasswordResetConfirmRequest  true  "Email, código y contraseña"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ConfirmPasswordReset(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResendCode godoc
// @Summary      Reenviar el código pendiente
// @Description  La falla se reduce a un mensaje genérico a propósito: el
// @Description  reenvío no debe filtrar si la cuenta existe o no.
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.PasswordResetRequest  true  "Email de la cuenta"
// @Success      202
// @Router       /api/auth/resend-code [post]
func (h *AuthHandler) ResendCode(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResendCode(c.Context(), req.Email); err != nil {
		// banner genérico: el detalle del colaborador no viaja al cliente
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "RESEND_FAILED", Message: "no se pudo reenviar el código, inténtalo de nuevo"})
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// SignOut godoc
// @Summary      Cerrar sesión (descarta también el filtro de oficial)
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.uc.SignOut(c.Context(), GetUserID(c), GetRemoteSession(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
