package collaborator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// authGateway implementa remote.AuthGateway contra el colaborador de
// autenticación. Los códigos OTP viajan tal cual; acá no hay criptografía.
type authGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway de autenticación.
func NewAuthGateway(c *Client) remote.AuthGateway {
	return &authGateway{c: c}
}

func (g *authGateway) GetSession(ctx context.Context, token string) (*remote.SessionInfo, error) {
	errBody := new(errorBody)
	var env itemEnvelope[remote.SessionInfo]
	resp, err := g.c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&env).
		SetError(errBody).
		Get("/auth/session")
	if err != nil {
		return nil, fmt.Errorf("consultando sesión: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		// sesión ausente o vencida: no es una falla, es "no hay sesión"
		return nil, nil
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, g.c.mapError(resp.StatusCode(), errBody.Message)
	}
	return &env.Data, nil
}

func (g *authGateway) SignUp(ctx context.Context, in remote.SignUpInput) error {
	return g.c.mutate(ctx, "auth.signUp", in, nil)
}

func (g *authGateway) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	body := struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}{email, code}
	var env itemEnvelope[struct {
		Token string `json:"token"`
	}]
	if err := g.c.mutate(ctx, "auth.verifyOtp", body, &env); err != nil {
		return "", err
	}
	if env.Data.Token == "" {
		return "", fmt.Errorf("%w: el colaborador no devolvió token de sesión", domain.ErrUnauthorized)
	}
	return env.Data.Token, nil
}

func (g *authGateway) RequestPasswordReset(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	return g.c.mutate(ctx, "auth.requestPasswordReset", body, nil)
}

func (g *authGateway) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	body := struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}{email, code, newPassword}
	return g.c.mutate(ctx, "auth.confirmPasswordReset", body, nil)
}

func (g *authGateway) ResendCode(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	return g.c.mutate(ctx, "auth.resendCode", body, nil)
}

func (g *authGateway) SignOut(ctx context.Context, token string) error {
	errBody := new(errorBody)
	resp, err := g.c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetError(errBody).
		Post("/auth/signOut")
	if err != nil {
		return fmt.Errorf("cerrando sesión: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return g.c.mapError(resp.StatusCode(), errBody.Message)
	}
	return nil
}
