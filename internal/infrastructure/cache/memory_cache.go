package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/avicampo/avicola-api/internal/domain/remote"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache caché de queries en memoria, para desarrollo sin Redis y para
// pruebas. La expiración se evalúa de forma perezosa en cada lectura.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache construye el caché en memoria.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// Get devuelve el payload vigente y si la clave existía.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.payload, true, nil
}

// Set guarda el payload con la vigencia dada (cero = sin expiración).
func (c *MemoryCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// InvalidatePrefix borra todas las claves bajo cada prefijo dado.
func (c *MemoryCache) InvalidatePrefix(_ context.Context, prefixes ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
	return nil
}

// Len cantidad de entradas vivas (útil en pruebas).
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ remote.QueryCache = (*MemoryCache)(nil)
