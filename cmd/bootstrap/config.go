package bootstrap

import (
	"time"

	"sportshub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBillingLocation,
	),
)

// NewBillingLocation is the zone due dates and calendar days are computed in.
func NewBillingLocation(cfg config.Config) *time.Location {
	return cfg.Billing.Location()
}
