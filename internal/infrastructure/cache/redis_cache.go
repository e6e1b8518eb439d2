// Package cache implementaciones del caché de queries: Redis para producción y
// un store en memoria para desarrollo y pruebas.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// keyspace aísla las claves de esta aplicación dentro del Redis compartido.
const keyspace = "avicola:q:"

// RedisCache caché de queries sobre Redis. La invalidación por prefijo se hace
// con SCAN incremental para no bloquear el servidor con KEYS.
type RedisCache struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewRedisCache conecta al Redis configurado y verifica la conexión.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: conectando a redis: %w", err)
	}
	return &RedisCache{rdb: rdb, log: log.Component("cache")}, nil
}

// Get devuelve el payload cacheado y si la clave existía.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, keyspace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: leyendo %s: %w", key, err)
	}
	return payload, true, nil
}

// Set guarda el payload con la vigencia dada.
func (c *RedisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, keyspace+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache: escribiendo %s: %w", key, err)
	}
	return nil
}

// InvalidatePrefix borra todas las claves bajo cada prefijo dado.
func (c *RedisCache) InvalidatePrefix(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		iter := c.rdb.Scan(ctx, 0, keyspace+prefix+"*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("cache: recorriendo prefijo %s: %w", prefix, err)
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("cache: invalidando prefijo %s: %w", prefix, err)
		}
		c.log.Debug().Str("prefix", prefix).Int("keys", len(keys)).Msg("Prefijo de caché invalidado")
	}
	return nil
}

// Close cierra la conexión a Redis.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

var _ remote.QueryCache = (*RedisCache)(nil)
