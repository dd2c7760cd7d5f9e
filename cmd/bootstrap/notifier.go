package bootstrap

import (
	"context"

	"sportshub/internal/infra/notifier"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/config"
	"sportshub/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewRedisClient,
		NewNotifier,
	),
)

// NewRedisClient yields a nil client when REDIS_URL is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := notifier.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewNotifier(
	store notifier.Store,
	client *redis.Client,
	cfg config.Config,
	clk clock.Clock,
	failures notifier.FailureCounter,
) shared.Notifier {
	// A typed nil *RedisPublisher would not compare equal to nil inside the notifier.
	var publisher notifier.Publisher
	if client != nil {
		publisher = notifier.NewRedisPublisher(client)
	}
	return notifier.New(store, publisher, cfg.Redis.ChannelPrefix, clk, failures)
}
