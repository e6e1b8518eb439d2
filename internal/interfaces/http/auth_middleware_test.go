package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/domain/entity"
	apphttp "github.com/avicampo/avicola-api/internal/interfaces/http"
	pkgjwt "github.com/avicampo/avicola-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOrgID     = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "avicola-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - MembershipGate para bloquear membresías no activas
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.MembershipGate(),
		func(c *fiber.Ctx) error {
			m := apphttp.GetMembership(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"mode": string(m.ActiveMode),
			})
		},
	)
	return app
}

// tokenForStatus genera un JWT con el estado de membresía indicado.
func tokenForStatus(t *testing.T, status string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Session{
		UserID:        testUserID,
		OrgID:         testOrgID,
		Role:          entity.RoleOfficer,
		Mode:          string(entity.ModeOfficer),
		Status:        status,
		RemoteSession: "sesion-remota-123",
	}, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 2: Header sin el esquema Bearer → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic dXN1YXJpbzpjbGF2ZQ==")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 3: Token malformado o con firma ajena → HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	otro, err := pkgjwt.Generate("otro-secreto", testIssuer, pkgjwt.Session{UserID: testUserID}, testExpMin)
	require.NoError(t, err)
	resp2 := doRequest(t, app, "Bearer "+otro)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode,
		"un token firmado con otro secreto no debe pasar")
}

// Caso 4: Token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Session{
		UserID: testUserID,
		Status: entity.MembershipActive,
	}, -5) // expirado hace cinco minutos
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token válido → pasa y los locals quedan poblados desde los claims.
func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		m := apphttp.GetMembership(c)
		return c.JSON(fiber.Map{
			"user_id":        apphttp.GetUserID(c),
			"org_id":         m.OrgID,
			"mode":           string(m.ActiveMode),
			"remote_session": apphttp.GetRemoteSession(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForStatus(t, entity.MembershipActive))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testOrgID, body["org_id"])
	assert.Equal(t, string(entity.ModeOfficer), body["mode"])
	assert.Equal(t, "sesion-remota-123", body["remote_session"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MembershipGate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: Membresía ACTIVE → pasa a la pantalla de negocio (HTTP 200).
func TestMembershipGate_ActivaPasa(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForStatus(t, entity.MembershipActive))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 7: Sin organización → HTTP 404 NO_ORG, el código que la UI usa para
// enviar al usuario a la pantalla de crear/unirse a una granja.
func TestMembershipGate_SinOrganizacion_Retorna404(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForStatus(t, entity.MembershipNoOrg))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_ORG")
}

// Caso 8: Membresía pendiente → HTTP 403 MEMBERSHIP_PENDING.
func TestMembershipGate_Pendiente_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForStatus(t, entity.MembershipPending))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MEMBERSHIP_PENDING")
}

// Caso 9: Membresía rechazada → HTTP 403 MEMBERSHIP_REJECTED.
func TestMembershipGate_Rechazada_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForStatus(t, entity.MembershipRejected))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MEMBERSHIP_REJECTED")
}
