package redisx_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/redisx"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "idem:sale:create:abc-123", redisx.Key("abc-123"))
}

func TestIdempotencyStore_SinServidorDevuelveError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	store := redisx.NewIdempotencyStore(rdb)
	ctx := context.Background()

	_, reserved, err := store.Reserve(ctx, "k")
	assert.ErrorContains(t, err, "idem:sale:create:k")
	assert.False(t, reserved)

	err = store.Save(ctx, "k", "sale-1")
	assert.ErrorContains(t, err, "idem:sale:create:k")

	err = store.Release(ctx, "k")
	assert.ErrorContains(t, err, "idem:sale:create:k")
}
