//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sportshub/internal/infra/metrics"
	"sportshub/internal/infra/notifier"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/config"
	"sportshub/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	id    uuid.UUID
	err   error
	saved []shared.Notification
}

func (s *fakeStore) Create(_ context.Context, n shared.Notification, _ time.Time) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.saved = append(s.saved, n)
	return s.id, nil
}

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, cleanup, err := notifier.NewRedisClient(config.RedisConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() {
		cleanup()
		mr.Close()
	})
	return client, mr
}

func TestNotify(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	notification := shared.Notification{
		UserID:  userID,
		Type:    shared.NotifyReservationCreated,
		Title:   "Reservation created",
		Message: "Court 1 on 2026-03-02 10:00-11:00",
		Link:    "/reservations/abc",
	}

	t.Run("stores then publishes on the user channel", func(t *testing.T) {
		client, _ := setupRedis(t)
		store := &fakeStore{id: uuid.New()}
		m := metrics.New()
		n := notifier.New(store, notifier.NewRedisPublisher(client), "notifications", clock.NewMockClock(now), m)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		sub := client.Subscribe(ctx, n.Channel(userID))
		defer sub.Close()
		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		n.Notify(ctx, notification)

		select {
		case msg := <-sub.Channel():
			assert.Equal(t, "notifications:"+userID.String(), msg.Channel)
			var got notifier.Message
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
			assert.Equal(t, store.id, got.ID)
			assert.Equal(t, "reservation_created", got.Type)
			assert.Equal(t, notification.Link, got.Link)
			assert.True(t, got.CreatedAt.Equal(now))
		case <-ctx.Done():
			t.Fatal("no message published")
		}
		require.Len(t, store.saved, 1)
		assert.Equal(t, 0.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("publish")))
	})

	t.Run("store failure is counted and nothing is published", func(t *testing.T) {
		client, mr := setupRedis(t)
		store := &fakeStore{err: errors.New("db down")}
		m := metrics.New()
		n := notifier.New(store, notifier.NewRedisPublisher(client), "notifications", clock.NewMockClock(now), m)

		n.Notify(context.Background(), notification)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("store")))
		assert.Empty(t, mr.PubSubChannels(""))
	})

	t.Run("publish failure is counted", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		client, cleanup, err := notifier.NewRedisClient(config.RedisConfig{URL: "redis://" + mr.Addr()})
		require.NoError(t, err)
		defer cleanup()
		mr.Close()
		store := &fakeStore{id: uuid.New()}
		m := metrics.New()
		n := notifier.New(store, notifier.NewRedisPublisher(client), "notifications", clock.NewMockClock(now), m)

		n.Notify(context.Background(), notification)

		require.Len(t, store.saved, 1)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("publish")))
	})

	t.Run("cancelled request context still delivers", func(t *testing.T) {
		store := &fakeStore{id: uuid.New()}
		n := notifier.New(store, nil, "notifications", clock.NewMockClock(now), nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n.Notify(ctx, notification)

		require.Len(t, store.saved, 1)
	})
}

func TestNewRedisClientWithoutURL(t *testing.T) {
	client, cleanup, err := notifier.NewRedisClient(config.RedisConfig{})

	require.NoError(t, err)
	assert.Nil(t, client)
	cleanup()
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, _, err := notifier.NewRedisClient(config.RedisConfig{URL: "://nope"})

	assert.Error(t, err)
}
