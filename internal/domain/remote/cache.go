package remote

import (
	"context"
	"time"
)

// QueryCache caché de respuestas de consulta, una entrada por clave canónica de
// parámetros. Las mutaciones invalidan por prefijo (nunca el store completo), de
// modo que pantallas concurrentes leyendo el mismo recurso convergen a la verdad
// del servidor sin coordinación explícita.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefixes ...string) error
}
