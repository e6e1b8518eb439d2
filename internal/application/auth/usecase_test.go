package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/jwt"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway implementación controlable del colaborador de autenticación.
type fakeGateway struct {
	session *remote.SessionInfo
	err     error
}

func (g *fakeGateway) GetSession(context.Context, string) (*remote.SessionInfo, error) {
	return g.session, g.err
}
func (g *fakeGateway) SignUp(context.Context, remote.SignUpInput) error { return g.err }
func (g *fakeGateway) VerifyOTP(context.Context, string, string) (string, error) {
	return "token-remoto-abc", g.err
}
func (g *fakeGateway) RequestPasswordReset(context.Context, string) error { return g.err }
func (g *fakeGateway) ConfirmPasswordReset(context.Context, string, string, string) error {
	return g.err
}
func (g *fakeGateway) ResendCode(context.Context, string) error { return g.err }
func (g *fakeGateway) SignOut(context.Context, string) error    { return g.err }

func buildUseCase(gw remote.AuthGateway) *auth.UseCase {
	cfg := config.JWTConfig{Secret: "test-secret-key-for-unit-tests", Issuer: "avicola-api-test", Expiration: 60}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return auth.NewUseCase(gw, session.NewOfficerFilter(), cfg, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests VerifyOTP
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el colaborador acepta el código pero todavía no reconoce la sesión
// (GetSession responde sin sesión). El flujo responde 401, no entra en pánico.
func TestVerifyOTP_SesionNoPropagada_Retorna401(t *testing.T) {
	uc := buildUseCase(&fakeGateway{session: nil})

	var out *dto.TokenResponse
	var err error
	assert.NotPanics(t, func() {
		out, err = uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{
			Email: "granja@ejemplo.com",
			Code:  "493817",
		})
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 2: con la sesión resuelta se emite el JWT propio de la aplicación, con la
// membresía y el token remoto firmados dentro de los claims.
func TestVerifyOTP_EmiteTokenConClaims(t *testing.T) {
	uc := buildUseCase(&fakeGateway{session: &remote.SessionInfo{
		UserID: "u-1",
		Email:  "granja@ejemplo.com",
		Membership: entity.Membership{
			UserID:     "u-1",
			OrgID:      "org-1",
			Role:       entity.RoleOfficer,
			Status:     entity.MembershipActive,
			ActiveMode: entity.ModeOfficer,
		},
	}})

	out, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{
		Email: "granja@ejemplo.com",
		Code:  "493817",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	claims, err := jwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "org-1", claims.OrgID)
	assert.Equal(t, string(entity.ModeOfficer), claims.Mode)
	assert.Equal(t, "token-remoto-abc", claims.RemoteSession)
}

// Caso 3: un código con forma inválida nunca viaja al colaborador.
func TestVerifyOTP_CodigoInvalidoNoViaja(t *testing.T) {
	uc := buildUseCase(&fakeGateway{session: nil})

	out, err := uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{
		Email: "granja@ejemplo.com",
		Code:  "12ab56",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
