package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
	apphttp "github.com/avicampo/avicola-api/internal/interfaces/http"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// stubGateway colaborador de autenticación controlable para el handler de sesión.
type stubGateway struct {
	session *remote.SessionInfo
	err     error
}

func (g *stubGateway) GetSession(context.Context, string) (*remote.SessionInfo, error) {
	return g.session, g.err
}
func (g *stubGateway) SignUp(context.Context, remote.SignUpInput) error { return nil }
func (g *stubGateway) VerifyOTP(context.Context, string, string) (string, error) {
	return "", nil
}
func (g *stubGateway) RequestPasswordReset(context.Context, string) error { return nil }
func (g *stubGateway) ConfirmPasswordReset(context.Context, string, string, string) error {
	return nil
}
func (g *stubGateway) ResendCode(context.Context, string) error { return nil }
func (g *stubGateway) SignOut(context.Context, string) error    { return nil }

// buildSessionApp monta GET /api/session con el gateway y el guard dados.
func buildSessionApp(gw remote.AuthGateway, guard *apphttp.CallbackGuard) *fiber.App {
	filters := session.NewOfficerFilter()
	resolver := session.NewResolver(gw)
	authUC := appauth.NewUseCase(gw, filters,
		config.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, Expiration: testExpMin},
		logger.New(logger.Config{Env: "test", Level: "error"}))
	handler := apphttp.NewSessionHandler(resolver, filters, authUC, guard, testJWTSecret)

	app := fiber.New()
	app.Get("/api/session", handler.Get)
	return app
}

func getSession(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// Caso 1: sin token ni ventana de gracia → 401 NO_SESSION.
func TestSessionGet_SinSesion_Retorna401(t *testing.T) {
	app := buildSessionApp(&stubGateway{}, apphttp.NewCallbackGuard(4*time.Second))
	status, body := getSession(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "NO_SESSION")
}

// Caso 2: sin token pero con un callback recién llegado → 202 para que la UI
// espere el intercambio en vez de redirigir al login.
func TestSessionGet_GraciaTrasCallback_Retorna202(t *testing.T) {
	guard := apphttp.NewCallbackGuard(time.Minute)
	guard.Mark()
	app := buildSessionApp(&stubGateway{}, guard)

	status, body := getSession(t, app, "")
	assert.Equal(t, http.StatusAccepted, status)
	assert.Contains(t, body, "CALLBACK_IN_PROGRESS")
}

// Caso 3: con token pero el colaborador aún no reconoce la sesión, dentro de la
// gracia → también 202 (la sesión remota todavía se está propagando).
func TestSessionGet_SesionNoPropagadaEnGracia_Retorna202(t *testing.T) {
	guard := apphttp.NewCallbackGuard(time.Minute)
	guard.Mark()
	app := buildSessionApp(&stubGateway{session: nil}, guard)

	status, body := getSession(t, app, tokenForStatus(t, entity.MembershipActive))
	assert.Equal(t, http.StatusAccepted, status)
	assert.Contains(t, body, "CALLBACK_IN_PROGRESS")
}

// Caso 4: la gracia cubre solo la falta de sesión; una caída real del
// colaborador durante la ventana se responde como error, nunca como 202.
func TestSessionGet_CaidaDelColaboradorEnGracia_NoSeEnmascara(t *testing.T) {
	guard := apphttp.NewCallbackGuard(time.Minute)
	guard.Mark()
	app := buildSessionApp(&stubGateway{err: errors.New("dial tcp: i/o timeout")}, guard)

	status, body := getSession(t, app, tokenForStatus(t, entity.MembershipActive))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, body, "CALLBACK_IN_PROGRESS")
	assert.Contains(t, body, "INTERNAL")
}

// Caso 5: sesión resuelta → 200 con la membresía fresca; el modo activo es el
// firmado en el token, no el del colaborador.
func TestSessionGet_SesionResuelta_Retorna200(t *testing.T) {
	gw := &stubGateway{session: &remote.SessionInfo{
		UserID: testUserID,
		Email:  "granja@ejemplo.com",
		Membership: entity.Membership{
			UserID:     testUserID,
			OrgID:      testOrgID,
			Role:       entity.RoleOfficer,
			Status:     entity.MembershipActive,
			ActiveMode: entity.ModeManagement, // el token manda
		},
	}}
	app := buildSessionApp(gw, apphttp.NewCallbackGuard(time.Minute))

	status, body := getSession(t, app, tokenForStatus(t, entity.MembershipActive))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, testUserID)
	assert.Contains(t, body, `"active_mode":"OFFICER"`, "el modo activo viene del token firmado")
}
