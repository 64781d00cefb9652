package events

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	redisclient "github.com/zatekoja/shiftboard/internal/infrastructure/clients/redis"
)

// newOfflineBus returns a bus whose Redis is unreachable; subscription
// bookkeeping works without a server.
func newOfflineBus(t *testing.T) *RedisEventBus {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisEventBus(redisclient.NewClientFromRedis(client))
}

func waitClosed(t *testing.T, ch <-chan *entities.StandingEvent) {
	t.Helper()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected subscription to be closed")
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}
}

func TestRedisEventBus_PublishRejectsNil(t *testing.T) {
	bus := newOfflineBus(t)
	defer bus.Close()

	assert.Error(t, bus.Publish(context.Background(), "standing:updates", nil))
}

func TestRedisEventBus_SubscriptionEndsWithContext(t *testing.T) {
	bus := newOfflineBus(t)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := bus.Subscribe(ctx, "standing:updates")
	require.NoError(t, err)

	cancel()
	waitClosed(t, sub)

	assert.Eventually(t, func() bool {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		return len(bus.channels) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRedisEventBus_CloseEndsSubscriptions(t *testing.T) {
	bus := newOfflineBus(t)

	sub1, err := bus.Subscribe(context.Background(), "standing:updates")
	require.NoError(t, err)
	sub2, err := bus.Subscribe(context.Background(), "standing:updates")
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	waitClosed(t, sub1)
	waitClosed(t, sub2)

	_, err = bus.Subscribe(context.Background(), "standing:updates")
	assert.Error(t, err)
}

func TestRedisEventBus_StaleTeardownKeepsNewerSubscription(t *testing.T) {
	bus := newOfflineBus(t)
	defer bus.Close()

	ctx := context.Background()
	_, err := bus.Subscribe(ctx, "standing:updates")
	require.NoError(t, err)

	bus.mu.Lock()
	stale := bus.channels["standing:updates"]
	bus.mu.Unlock()
	require.NoError(t, bus.Unsubscribe(ctx, "standing:updates"))

	fresh, err := bus.Subscribe(ctx, "standing:updates")
	require.NoError(t, err)

	require.NoError(t, bus.closeChannel("standing:updates", stale))

	bus.mu.Lock()
	_, live := bus.channels["standing:updates"]
	bus.mu.Unlock()
	assert.True(t, live)

	select {
	case _, ok := <-fresh:
		assert.True(t, ok, "newer subscription must stay open")
	default:
	}
}
