package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/providers"
)

const invalidationTimeout = 5 * time.Second

// CacheInvalidationService evicts cached standing entries when a facility or
// worker is activated or deactivated
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for standing events
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelStandingUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to standing updates: %w", err)
	}

	s.wg.Add(1)
	go s.processEvents(eventChan)
	log.Info().Str("channel", providers.EventChannelStandingUpdates).Msg("Cache invalidation service started")
	return nil
}

// Stop stops the service and waits for the event loop to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	s.wg.Wait()
	log.Info().Msg("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.StandingEvent) {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.StandingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), invalidationTimeout)
	defer cancel()

	if err := s.Invalidate(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Msg("Failed to invalidate standing cache")
		return
	}
	log.Debug().
		Str("event_id", event.ID).
		Str("kind", string(event.Kind)).
		Int64("entity_id", event.EntityID).
		Bool("is_active", event.IsActive).
		Msg("Invalidated standing cache")
}

// Invalidate evicts the cache entry named by a standing event. Lookups already
// in flight for that entry will not repopulate it.
func (s *CacheInvalidationService) Invalidate(ctx context.Context, event *entities.StandingEvent) error {
	var key string
	switch event.Kind {
	case entities.StandingKindFacility:
		key = providers.FacilityStandingKey(entities.FacilityID(event.EntityID))
	case entities.StandingKindWorker:
		key = providers.WorkerStandingKey(entities.WorkerID(event.EntityID))
	default:
		return fmt.Errorf("unknown standing kind %q", event.Kind)
	}

	if err := s.cache.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", key, err)
	}
	return nil
}

// InvalidateAll evicts every cached standing entry. Intended for maintenance
// after bulk standing changes that bypassed the event channel.
func (s *CacheInvalidationService) InvalidateAll(ctx context.Context) error {
	for _, prefix := range []string{providers.CacheKeyPrefixFacilityStanding, providers.CacheKeyPrefixWorkerStanding} {
		pattern := prefix + "*"
		if err := s.cache.InvalidatePattern(ctx, pattern); err != nil {
			return fmt.Errorf("failed to invalidate pattern %s: %w", pattern, err)
		}
		log.Info().Str("pattern", pattern).Msg("Invalidated cache pattern")
	}
	return nil
}
