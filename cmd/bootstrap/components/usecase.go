package components

import (
	"sportshub/internal/domain/booking"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/config"
	"sportshub/internal/usecase"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/jobs"
	"sportshub/internal/usecase/queries"
	"sportshub/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseJobsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewSubscriptionUseCase,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewChargeQueries,
		queries.NewSubscriptionQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseJobsModule = fx.Module("usecase/jobs",
	fx.Provide(
		NewRenewalJob,
	),
)

func NewPaymentCommands(
	uow shared.UnitOfWork,
	cfg config.Config,
	clk clock.Clock,
	notifier shared.Notifier,
	recorder shared.Recorder,
) commands.PaymentCommands {
	return commands.NewPaymentUseCase(uow, cfg.Billing.PaymentProvider, clk, notifier, recorder)
}

func NewRenewalJob(
	uow shared.UnitOfWork,
	pricer booking.PriceCalculator,
	clk clock.Clock,
	notifier shared.Notifier,
	recorder shared.Recorder,
	cfg config.Config,
) *jobs.RenewalJob {
	return jobs.NewRenewalJob(uow, pricer, clk, notifier, recorder, cfg.Billing.RenewalBatchSize)
}
