package bootstrap

import (
	"context"
	"log/slog"

	"sportshub/internal/pkg/config"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/jobs"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the subscription renewal job on the configured
// schedule. Overlapping runs are skipped; a slow batch delays the next one.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, job *jobs.RenewalJob, logger *slog.Logger) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	runCtx, cancel := context.WithCancel(context.Background())
	_, err := c.AddFunc(cfg.Billing.RenewalSchedule, func() {
		report, err := job.Run(runCtx)
		if err != nil {
			logger.Error("subscription renewal failed", "error", err)
			return
		}
		logger.Info("subscription renewal finished",
			"renewed", report.Renewed,
			"expired", report.Expired,
			"failed", report.Failed)
	})
	if err != nil {
		cancel()
		return errs.Wrapf(err, "invalid renewal schedule %q", cfg.Billing.RenewalSchedule)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("scheduler started", "renewal_schedule", cfg.Billing.RenewalSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
