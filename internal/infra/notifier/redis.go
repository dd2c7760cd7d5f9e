package notifier

import (
	"context"
	"log/slog"
	"time"

	"sportshub/internal/pkg/config"
	"sportshub/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient returns a nil client when no URL is configured; the
// notifier then only persists.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.URL == "" {
		slog.Info("redis not configured, notifications will not be published")
		return nil, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "invalid redis URL")
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
			return
		}
		slog.Info("redis client closed")
	}
	return client, cleanup, nil
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "failed to publish to %s", channel)
	}
	return nil
}
