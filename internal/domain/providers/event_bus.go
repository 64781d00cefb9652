package providers

import (
	"context"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to standing events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.StandingEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.StandingEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelStandingUpdates carries facility and worker activation changes
const EventChannelStandingUpdates = "standing:updates"
