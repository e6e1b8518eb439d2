package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/infrastructure/cache"
)

// Caso 1: set y get básicos; clave inexistente devuelve ok=false sin error.
func TestMemoryCache_SetGet(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	payload, ok, err := c.Get(ctx, "officer.farmers.list|org=o1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)

	require.NoError(t, c.Set(ctx, "officer.farmers.list|org=o1", []byte(`{"data":[]}`), 0))

	payload, ok, err = c.Get(ctx, "officer.farmers.list|org=o1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"data":[]}`), payload)
}

// Caso 2: una entrada con vigencia vencida desaparece en la siguiente lectura.
func TestMemoryCache_Expiracion(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(2 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "la entrada vencida no debe servirse")
	assert.Equal(t, 0, c.Len(), "la lectura perezosa purga la entrada vencida")
}

// Caso 3: ttl cero significa sin expiración.
func TestMemoryCache_TTLCeroNoExpira(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	time.Sleep(2 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

// Caso 4: la invalidación por prefijo borra solo las claves bajo los prefijos
// dados y respeta las demás (el contrato del que depende la tabla de mutaciones).
func TestMemoryCache_InvalidatePrefix(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	claves := []string{
		"officer.farmers.list|org=o1",
		"officer.farmers.get|org=o1|farmer=f1",
		"management.farmers.list|org=o1",
		"officer.cycles.list|org=o1",
	}
	for _, k := range claves {
		require.NoError(t, c.Set(ctx, k, []byte("v"), 0))
	}

	require.NoError(t, c.InvalidatePrefix(ctx, "officer.farmers", "management.farmers"))

	assert.Equal(t, 1, c.Len())
	_, ok, err := c.Get(ctx, "officer.cycles.list|org=o1")
	require.NoError(t, err)
	assert.True(t, ok, "las claves fuera del prefijo sobreviven")
}
