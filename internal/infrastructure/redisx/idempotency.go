// Package redisx guarda las claves de idempotencia de ventas en Redis.
package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
)

// KeyIdemSaleCreate idem:sale:create:{idempotency_key} -> sale_id
const KeyIdemSaleCreate = "idem:sale:create:%s"

// PendingValue valor de una clave reservada cuya venta aún no se registró.
const PendingValue = "pending"

// TTLIdempotency vida de una clave de idempotencia.
var TTLIdempotency = 24 * time.Hour

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// New crea el cliente de Redis.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// IdempotencyStore implementación de ports.IdempotencyStore sobre Redis.
type IdempotencyStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewIdempotencyStore construye el store.
func NewIdempotencyStore(rdb redis.Cmdable) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: TTLIdempotency}
}

// Key clave de Redis para una Idempotency-Key.
func Key(idempotencyKey string) string {
	return fmt.Sprintf(KeyIdemSaleCreate, idempotencyKey)
}

// Reserve guarda PendingValue con SET NX. Si la clave ya existe devuelve su valor,
// o "" mientras siga en PendingValue.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (string, bool, error) {
	ok, err := s.rdb.SetNX(ctx, Key(key), PendingValue, s.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis setnx %s: %w", Key(key), err)
	}
	if ok {
		return "", true, nil
	}
	id, err := s.rdb.Get(ctx, Key(key)).Result()
	if errors.Is(err, redis.Nil) || id == PendingValue {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", Key(key), err)
	}
	return id, false, nil
}

// Save reemplaza la reserva por el id de la venta, con TTL de 24h.
func (s *IdempotencyStore) Save(ctx context.Context, key, saleID string) error {
	if err := s.rdb.Set(ctx, Key(key), saleID, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", Key(key), err)
	}
	return nil
}

// Release borra la reserva.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, Key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", Key(key), err)
	}
	return nil
}
