// Package lock serializa las escrituras de líneas por documento: con Redis
// (bsm/redislock) entre réplicas, o en memoria cuando hay una sola instancia.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/pkg/config"
)

var _ ports.Locker = (*RedisLocker)(nil)

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// RedisLocker obtiene bloqueos con TTL en Redis. Un bloqueo de un proceso
// caído expira solo.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

// NewRedisLocker construye el locker sobre un cliente ya conectado.
func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb), ttl: ttl}
}

// Acquire intenta una sola vez; si la clave está tomada devuelve domain.ErrLocked.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (ports.Lock, error) {
	lk, err := l.client.Obtain(ctx, key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrLocked
	}
	if err != nil {
		return nil, fmt.Errorf("redis lock %s: %w", key, err)
	}
	return redisLock{lk}, nil
}

type redisLock struct {
	lk *redislock.Lock
}

// Release libera el bloqueo; si ya expiró no es un error.
func (r redisLock) Release(ctx context.Context) error {
	err := r.lk.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		return nil
	}
	return err
}
