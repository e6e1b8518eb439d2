// Package invalidate aplica la tabla declarativa de invalidación tras cada
// mutación exitosa. Es el único "onSuccess" del patrón de mutación: cerrar el
// formulario y refrescar pantallas es consecuencia de borrar estas claves.
package invalidate

import (
	"context"

	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// Invalidator borra del caché los prefijos declarados para una mutación.
type Invalidator struct {
	cache remote.QueryCache
	log   *logger.Logger
}

// New construye el invalidador.
func New(cache remote.QueryCache, log *logger.Logger) *Invalidator {
	return &Invalidator{cache: cache, log: log.Component("invalidate")}
}

// OnSuccess invalida el conjunto declarado para la mutación. Una falla del caché
// no revierte la mutación ya aplicada: se registra y la siguiente consulta
// pagará una ida extra al colaborador, nada más.
func (i *Invalidator) OnSuccess(ctx context.Context, kind remote.MutationKind) {
	prefixes := remote.AffectedKeys(kind)
	if len(prefixes) == 0 {
		// Una mutación sin conjunto declarado es un defecto de la tabla; los
		// tests lo impiden, pero no dejamos pasar el caso en silencio.
		i.log.Error().Str("mutation", string(kind)).Msg("mutación sin conjunto de invalidación declarado")
		return
	}
	if err := i.cache.InvalidatePrefix(ctx, prefixes...); err != nil {
		i.log.Warn().Err(err).Str("mutation", string(kind)).Msg("no se pudo invalidar el caché")
	}
}
