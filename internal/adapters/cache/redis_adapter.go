package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/shiftboard/internal/domain/providers"
	redisclient "github.com/zatekoja/shiftboard/internal/infrastructure/clients/redis"
)

// scanBatchSize bounds each SCAN round trip in InvalidatePattern
const scanBatchSize = 200

// Generation counters live beside the cached values. The epoch is advanced by
// pattern invalidation and is part of every key's token.
const (
	generationKeyPrefix = "gen:"
	epochKey            = "gen:epoch"
)

// ErrCacheMiss is returned by Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// setIfGenerationScript writes KEYS[1] only while "<epoch>.<generation>"
// still equals ARGV[2]. ARGV[3] is the TTL in seconds, 0 for none.
var setIfGenerationScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
local epoch = redis.call('GET', KEYS[3]) or '0'
if epoch .. '.' .. gen ~= ARGV[2] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// RedisAdapter implements the CacheProvider interface using Redis
type RedisAdapter struct {
	client *redisclient.Client
}

var _ providers.CacheProvider = (*RedisAdapter)(nil)

// NewRedisAdapter creates a new Redis cache adapter
func NewRedisAdapter(client *redisclient.Client) *RedisAdapter {
	return &RedisAdapter{
		client: client,
	}
}

func generationKey(key string) string {
	return generationKeyPrefix + key
}

// Get retrieves a value from cache
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	return result, nil
}

// Generation returns "<epoch>.<generation>" for key; missing counters read as 0
func (a *RedisAdapter) Generation(ctx context.Context, key string) (string, error) {
	values, err := a.client.Client().MGet(ctx, generationKey(key), epochKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read cache generation: %w", err)
	}
	return counterValue(values[1]) + "." + counterValue(values[0]), nil
}

func counterValue(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "0"
}

// SetIfGeneration stores value unless key was invalidated since generation was read
func (a *RedisAdapter) SetIfGeneration(ctx context.Context, key string, value []byte, expirationSeconds int, generation string) (bool, error) {
	if expirationSeconds < 0 {
		expirationSeconds = 0
	}
	stored, err := setIfGenerationScript.Run(ctx, a.client.Client(),
		[]string{key, generationKey(key), epochKey},
		value, generation, expirationSeconds,
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to set in cache: %w", err)
	}
	return stored == 1, nil
}

// Invalidate deletes key and advances its generation in one transaction
func (a *RedisAdapter) Invalidate(ctx context.Context, key string) error {
	_, err := a.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(key))
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cache key: %w", err)
	}
	return nil
}

// InvalidatePattern advances the epoch, then removes every key matching
// pattern. It walks the keyspace with SCAN so large databases are not blocked.
func (a *RedisAdapter) InvalidatePattern(ctx context.Context, pattern string) error {
	rdb := a.client.Client()
	if err := rdb.Incr(ctx, epochKey).Err(); err != nil {
		return fmt.Errorf("failed to advance cache epoch: %w", err)
	}

	var cursor uint64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
