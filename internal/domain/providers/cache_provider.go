package providers

import (
	"context"
)

// CacheProvider defines the interface for caching operations.
//
// Writes are guarded by a generation token: a reader takes Generation before
// loading from the store and passes it to SetIfGeneration, so a value loaded
// before an invalidation can never be written back after it.
type CacheProvider interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Generation returns an opaque token that changes whenever key is invalidated
	Generation(ctx context.Context, key string) (string, error)

	// SetIfGeneration stores value with expiration unless key was invalidated
	// after generation was read. It reports whether the value was stored.
	SetIfGeneration(ctx context.Context, key string, value []byte, expirationSeconds int, generation string) (bool, error)

	// Invalidate removes key and advances its generation
	Invalidate(ctx context.Context, key string) error

	// InvalidatePattern removes every key matching a glob pattern and
	// advances the generation of every key
	InvalidatePattern(ctx context.Context, pattern string) error
}
