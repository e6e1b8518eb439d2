package remote

import (
	"context"

	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// OTPLength longitud fija del código numérico de verificación. El cliente valida
// la forma y reenvía el código textual al colaborador de autenticación: no hace
// ningún trabajo criptográfico propio.
const OTPLength = 6

// SignUpInput alta de cuenta por email.
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SessionInfo sesión resuelta por el colaborador de autenticación.
type SessionInfo struct {
	UserID     string            `json:"userId"`
	Email      string            `json:"email"`
	Membership entity.Membership `json:"membership"`
}

// AuthGateway colaborador externo de autenticación. El cliente solo orquesta los
// pasos (registro, OTP, restablecimiento) y renderiza sus resultados.
type AuthGateway interface {
	// GetSession resuelve la sesión y la membresía del token dado.
	GetSession(ctx context.Context, token string) (*SessionInfo, error)
	// SignUp inicia el registro; el colaborador envía el código OTP al email.
	SignUp(ctx context.Context, in SignUpInput) error
	// VerifyOTP reenvía el código de 6 dígitos tal cual; devuelve el token de sesión.
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	// RequestPasswordReset inicia el flujo de restablecimiento.
	RequestPasswordReset(ctx context.Context, email string) error
	// ConfirmPasswordReset reenvía código + contraseña nueva.
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	// ResendCode pide reenviar el código pendiente.
	ResendCode(ctx context.Context, email string) error
	// SignOut cierra la sesión del lado del colaborador.
	SignOut(ctx context.Context, token string) error
}
