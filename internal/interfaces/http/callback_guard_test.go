package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Caso 1: sin callback registrado no hay ventana de gracia.
func TestCallbackGuard_SinMarcaNoHayGracia(t *testing.T) {
	g := NewCallbackGuard(4 * time.Second)
	assert.False(t, g.InGrace())
}

// Caso 2: dentro de la ventana la gracia está abierta; pasada la ventana, cierra.
func TestCallbackGuard_VentanaDeGracia(t *testing.T) {
	ahora := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	g := NewCallbackGuard(4 * time.Second)
	g.now = func() time.Time { return ahora }

	g.Mark()
	assert.True(t, g.InGrace())

	ahora = ahora.Add(3 * time.Second)
	assert.True(t, g.InGrace(), "a los 3s la ventana de 4s sigue abierta")

	ahora = ahora.Add(2 * time.Second)
	assert.False(t, g.InGrace(), "a los 5s la ventana de 4s ya cerró")
}

// Caso 3: un callback nuevo extiende la ventana desde su llegada.
func TestCallbackGuard_MarcaNuevaExtiende(t *testing.T) {
	ahora := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	g := NewCallbackGuard(4 * time.Second)
	g.now = func() time.Time { return ahora }

	g.Mark()
	ahora = ahora.Add(3 * time.Second)
	g.Mark() // llega otro callback
	ahora = ahora.Add(3 * time.Second)

	assert.True(t, g.InGrace(), "la segunda marca reabre la cuenta desde cero")
}

// Caso 4: la forma de callback es query con code= o error=, cualquiera de los dos.
func TestIsCallback_FormaDeCallback(t *testing.T) {
	assert.True(t, IsCallback("abc123", ""))
	assert.True(t, IsCallback("", "access_denied"))
	assert.True(t, IsCallback("abc123", "access_denied"))
	assert.False(t, IsCallback("", ""))
}
