package database

import (
	"context"
	"encoding/json"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/providers"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/infrastructure/observability"
)

// Cache TTLs (in seconds)
const (
	DefaultFacilityStandingTTL = 300 // 5 minutes
	DefaultWorkerStandingTTL   = 120 // 2 minutes
)

// CacheTTL configures how long standing lookups are kept
type CacheTTL struct {
	Facility int
	Worker   int
}

// CachedShiftLookupAdapter wraps a ShiftLookupRepository with standing caches.
// Shift queries always reach the underlying store since open shifts change
// with every claim. Lookup failures are never cached, and a lookup that
// races an invalidation never writes its result back.
type CachedShiftLookupAdapter struct {
	adapter repositories.ShiftLookupRepository
	cache   providers.CacheProvider
	ttl     CacheTTL
	metrics *observability.Metrics
}

var _ repositories.ShiftLookupRepository = (*CachedShiftLookupAdapter)(nil)

// NewCachedShiftLookupAdapter creates a new cached shift lookup adapter.
// Zero TTLs fall back to the defaults.
func NewCachedShiftLookupAdapter(
	adapter repositories.ShiftLookupRepository,
	cache providers.CacheProvider,
	ttl CacheTTL,
	metrics *observability.Metrics,
) *CachedShiftLookupAdapter {
	if ttl.Facility <= 0 {
		ttl.Facility = DefaultFacilityStandingTTL
	}
	if ttl.Worker <= 0 {
		ttl.Worker = DefaultWorkerStandingTTL
	}
	return &CachedShiftLookupAdapter{
		adapter: adapter,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
	}
}

// GetFacilityActive returns the facility's standing with caching
func (a *CachedShiftLookupAdapter) GetFacilityActive(ctx context.Context, id entities.FacilityID) (bool, error) {
	cacheKey := providers.FacilityStandingKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var active bool
		if err := json.Unmarshal(cached, &active); err == nil {
			observability.RecordCacheHit(ctx, a.metrics, "facility")
			return active, nil
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", cacheKey).Msg("Failed to unmarshal cached facility standing")
	}
	observability.RecordCacheMiss(ctx, a.metrics, "facility")

	generation, genErr := a.cache.Generation(ctx, cacheKey)
	active, err := a.adapter.GetFacilityActive(ctx, id)
	if err != nil {
		return false, err
	}

	if genErr == nil {
		a.setAsync(cacheKey, generation, active, a.ttl.Facility)
	}
	return active, nil
}

// GetWorker returns the worker's standing with caching
func (a *CachedShiftLookupAdapter) GetWorker(ctx context.Context, id entities.WorkerID) (*entities.Worker, error) {
	cacheKey := providers.WorkerStandingKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var worker entities.Worker
		if err := json.Unmarshal(cached, &worker); err == nil {
			observability.RecordCacheHit(ctx, a.metrics, "worker")
			return &worker, nil
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", cacheKey).Msg("Failed to unmarshal cached worker standing")
	}
	observability.RecordCacheMiss(ctx, a.metrics, "worker")

	generation, genErr := a.cache.Generation(ctx, cacheKey)
	worker, err := a.adapter.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		a.setAsync(cacheKey, generation, worker, a.ttl.Worker)
	}
	return worker, nil
}

// QueryEligibleShifts delegates to the underlying store
func (a *CachedShiftLookupAdapter) QueryEligibleShifts(ctx context.Context, query repositories.ShiftQuery) ([]entities.Shift, error) {
	return a.adapter.QueryEligibleShifts(ctx, query)
}

// setAsync updates the cache without blocking the response. The write is
// dropped if the key was invalidated after generation was read.
func (a *CachedShiftLookupAdapter) setAsync(key, generation string, value interface{}, ttl int) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	go func() {
		bgCtx := context.Background()
		stored, err := a.cache.SetIfGeneration(bgCtx, key, data, ttl, generation)
		if err != nil {
			observability.LoggerFromContext(bgCtx).Warn().Err(err).Str("key", key).Msg("Failed to cache standing")
			return
		}
		if !stored {
			observability.LoggerFromContext(bgCtx).Debug().Str("key", key).Msg("Standing invalidated during lookup, not caching")
		}
	}()
}
