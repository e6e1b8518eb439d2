package http

import (
	"sync"
	"time"
)

// CallbackGuard registra la llegada de un callback OAuth (query con code= o
// error=) y abre una ventana de gracia. Mientras la ventana esté abierta, la
// consulta de sesión sin sesión resuelta NO debe redirigir al login: el
// intercambio del código sigue en curso del lado del colaborador y redirigir
// ahí rompería el flujo.
type CallbackGuard struct {
	mu       sync.Mutex
	grace    time.Duration
	lastSeen time.Time
	now      func() time.Time
}

// NewCallbackGuard construye el guard con la ventana de gracia dada.
func NewCallbackGuard(grace time.Duration) *CallbackGuard {
	return &CallbackGuard{grace: grace, now: time.Now}
}

// IsCallback informa si los query params tienen forma de callback OAuth.
func IsCallback(code, errParam string) bool {
	return code != "" || errParam != ""
}

// Mark registra la llegada de un callback; abre (o extiende) la ventana.
func (g *CallbackGuard) Mark() {
	g.mu.Lock()
	g.lastSeen = g.now()
	g.mu.Unlock()
}

// InGrace informa si la ventana de gracia sigue abierta.
func (g *CallbackGuard) InGrace() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.lastSeen.IsZero() {
		return false
	}
	return g.now().Sub(g.lastSeen) < g.grace
}
