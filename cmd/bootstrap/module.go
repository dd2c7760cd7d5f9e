package bootstrap

import (
	"sportshub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	ObservabilityModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// ServerModule adds the background work that only the API process runs.
var ServerModule = fx.Options(
	Module,
	SchedulerModule,
)
