package bootstrap

import (
	"context"

	"sportshub/internal/infra/metrics"
	"sportshub/internal/infra/notifier"
	"sportshub/internal/infra/telemetry"
	"sportshub/internal/pkg/config"
	"sportshub/internal/usecase/shared"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(shared.Recorder)),
			fx.As(new(notifier.FailureCounter)),
		),
	),
	fx.Invoke(StartTelemetry),
)

func StartTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	provider, err := telemetry.Init(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	return nil
}
