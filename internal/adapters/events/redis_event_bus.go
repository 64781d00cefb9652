package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/providers"
	redisclient "github.com/zatekoja/shiftboard/internal/infrastructure/clients/redis"
)

// subscriberBuffer is the per-subscriber queue depth; events beyond it are dropped
const subscriberBuffer = 100

type subscriber chan *entities.StandingEvent

// channelState is one Redis subscription fanned out to local subscribers
type channelState struct {
	pubsub      *redis.PubSub
	subscribers map[subscriber]struct{}
}

// RedisEventBus implements the EventBus interface using Redis Pub/Sub
type RedisEventBus struct {
	client   *redisclient.Client
	mu       sync.Mutex
	channels map[string]*channelState
	ctx      context.Context
	cancel   context.CancelFunc
}

var _ providers.EventBus = (*RedisEventBus)(nil)

// NewRedisEventBus creates a new Redis-based event bus
func NewRedisEventBus(client *redisclient.Client) *RedisEventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:   client,
		channels: make(map[string]*channelState),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Publish publishes an event to every subscriber of channel, across processes
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.StandingEvent) error {
	if event == nil {
		return errors.New("cannot publish a nil standing event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Client().Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Debug().Str("channel", channel).Str("event_id", event.ID).Str("kind", string(event.Kind)).Msg("Published standing event")
	return nil
}

// Subscribe subscribes to events on a channel. The returned channel is
// closed when ctx is done, the channel is unsubscribed or the bus is closed.
func (b *RedisEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.StandingEvent, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, errors.New("event bus is closed")
	}

	b.mu.Lock()
	state, exists := b.channels[channel]
	if !exists {
		state = &channelState{
			pubsub:      b.client.Client().Subscribe(b.ctx, channel),
			subscribers: make(map[subscriber]struct{}),
		}
		b.channels[channel] = state
		go b.receiveMessages(channel, state)
	}

	sub := make(subscriber, subscriberBuffer)
	state.subscribers[sub] = struct{}{}
	count := len(state.subscribers)
	b.mu.Unlock()

	log.Info().Str("channel", channel).Int("subscribers", count).Msg("Subscribed to channel")

	go func() {
		select {
		case <-ctx.Done():
		case <-b.ctx.Done():
		}
		b.removeSubscriber(channel, state, sub)
	}()

	return sub, nil
}

// receiveMessages decodes messages from one Redis subscription and fans them out
func (b *RedisEventBus) receiveMessages(channel string, state *channelState) {
	defer func() {
		if err := b.closeChannel(channel, state); err != nil {
			log.Warn().Err(err).Str("channel", channel).Msg("Failed to close subscription")
		}
	}()

	ch := state.pubsub.Channel()
	for {
		select {
		case <-b.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event entities.StandingEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Warn().Err(err).Str("channel", channel).Msg("Failed to unmarshal standing event")
				continue
			}

			b.mu.Lock()
			for sub := range state.subscribers {
				select {
				case sub <- &event:
				default:
					log.Warn().Str("channel", channel).Str("event_id", event.ID).Msg("Subscriber channel full, skipping event")
				}
			}
			b.mu.Unlock()
		}
	}
}

func (b *RedisEventBus) removeSubscriber(channel string, state *channelState, sub subscriber) {
	b.mu.Lock()
	if _, ok := state.subscribers[sub]; !ok {
		b.mu.Unlock()
		return
	}
	delete(state.subscribers, sub)
	close(sub)
	last := len(state.subscribers) == 0
	b.mu.Unlock()

	if last {
		if err := b.closeChannel(channel, state); err != nil {
			log.Warn().Err(err).Str("channel", channel).Msg("Failed to close subscription")
		}
	}
}

// closeChannel tears down state if it is still the live subscription for channel.
// A newer subscription on the same channel is left alone.
func (b *RedisEventBus) closeChannel(channel string, state *channelState) error {
	b.mu.Lock()
	if b.channels[channel] != state {
		b.mu.Unlock()
		return nil
	}
	delete(b.channels, channel)
	for sub := range state.subscribers {
		close(sub)
	}
	state.subscribers = map[subscriber]struct{}{}
	b.mu.Unlock()

	if err := state.pubsub.Close(); err != nil {
		return fmt.Errorf("failed to close subscription %s: %w", channel, err)
	}
	log.Info().Str("channel", channel).Msg("Closed subscription")
	return nil
}

// Unsubscribe drops every local subscriber of channel
func (b *RedisEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	state, ok := b.channels[channel]
	b.mu.Unlock()
	if !ok {
		return nil
	}
	return b.closeChannel(channel, state)
}

// Close closes the event bus and all subscriptions
func (b *RedisEventBus) Close() error {
	b.cancel()

	b.mu.Lock()
	live := make(map[string]*channelState, len(b.channels))
	for channel, state := range b.channels {
		live[channel] = state
	}
	b.mu.Unlock()

	var errs []error
	for channel, state := range live {
		if err := b.closeChannel(channel, state); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing event bus: %w", errors.Join(errs...))
	}

	log.Info().Msg("Event bus closed")
	return nil
}
