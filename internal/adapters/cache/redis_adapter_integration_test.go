//go:build integration

package cache_test

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/shiftboard/internal/adapters/cache"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/redis"
	"github.com/zatekoja/shiftboard/pkg/config"
)

func newTestAdapter(t *testing.T) (*cache.RedisAdapter, *redis.Client) {
	t.Helper()

	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("Skipping integration test: TEST_REDIS_HOST not set")
	}

	port, err := strconv.Atoi(os.Getenv("TEST_REDIS_PORT"))
	if err != nil {
		port = 6379
	}
	client, err := redis.NewClient(&config.RedisConfig{
		Host:     os.Getenv("TEST_REDIS_HOST"),
		Port:     port,
		Password: os.Getenv("TEST_REDIS_PASSWORD"),
	})
	require.NoError(t, err, "Failed to create redis client")
	t.Cleanup(func() { client.Close() })
	return cache.NewRedisAdapter(client), client
}

func TestRedisAdapterGenerationGuardIntegration(t *testing.T) {
	adapter, client := newTestAdapter(t)
	ctx := context.Background()
	key := fmt.Sprintf("standing:facility:it-%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Client().Del(context.Background(), key, "gen:"+key) })

	generation, err := adapter.Generation(ctx, key)
	require.NoError(t, err)

	stored, err := adapter.SetIfGeneration(ctx, key, []byte("true"), 60, generation)
	require.NoError(t, err)
	assert.True(t, stored)

	value, err := adapter.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "true", string(value))

	ttl, err := client.Client().TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, adapter.Invalidate(ctx, key))
	_, err = adapter.Get(ctx, key)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	stored, err = adapter.SetIfGeneration(ctx, key, []byte("true"), 60, generation)
	require.NoError(t, err)
	assert.False(t, stored, "a token read before Invalidate must not write")

	fresh, err := adapter.Generation(ctx, key)
	require.NoError(t, err)
	require.NoError(t, adapter.InvalidatePattern(ctx, "standing:facility:it-none-*"))
	stored, err = adapter.SetIfGeneration(ctx, key, []byte("false"), 60, fresh)
	require.NoError(t, err)
	assert.False(t, stored, "a token read before InvalidatePattern must not write")
}
