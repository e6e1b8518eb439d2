package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// errorApp monta una ruta que responde el error dado a través del mapeador.
func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func bodyOf(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// Caso 1: un error inesperado (transporte, decodificación) responde 500 con un
// mensaje genérico fijo; el detalle interno no llega al cliente.
func TestRespondError_InesperadoNoFiltraDetalle(t *testing.T) {
	interno := fmt.Errorf("consultando desempeño: %w",
		errors.New(`Get "http://colaborador.interno:9000/rpc/x": dial tcp: i/o timeout`))
	status, body := bodyOf(t, errorApp(interno))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
	assert.Contains(t, body, "error inesperado")
	assert.NotContains(t, body, "colaborador.interno", "el detalle interno no debe viajar")
	assert.NotContains(t, body, "dial tcp")
}

// Caso 2: los centinelas de dominio conservan su código y mensaje.
func TestRespondError_Centinelas(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrAlreadyReverted, http.StatusConflict, "ALREADY_REVERTED"},
		{domain.ErrOrderNotDraft, http.StatusConflict, "ORDER_NOT_DRAFT"},
	}
	for _, caso := range casos {
		status, body := bodyOf(t, errorApp(caso.err))
		assert.Equal(t, caso.status, status, "error %v", caso.err)
		assert.Contains(t, body, caso.code)
	}
}

// Caso 3: el mensaje del colaborador sí se reenvía tal cual, con su HTTP
// original: es el texto que la UI muestra en banners.
func TestRespondError_MensajeDelColaboradorViajaVerbatim(t *testing.T) {
	remoto := &remote.Error{StatusCode: http.StatusUnprocessableEntity, Message: "el granjero ya tiene un ciclo activo"}
	status, body := bodyOf(t, errorApp(fmt.Errorf("colocando orden: %w", remoto)))

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "REMOTE_REJECTED")
	assert.Contains(t, body, "el granjero ya tiene un ciclo activo")
}
