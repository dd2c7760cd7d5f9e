package components

import (
	"sportshub/internal/infra/notifier"
	"sportshub/internal/infra/readstore"
	"sportshub/internal/infra/repository"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/infra/uow"
	"sportshub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Write-side repositories are built per transaction by the unit of work;
// only the query-side stores and the notification inbox are pool-bound.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Charge
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ChargeViewQueries)),
		),
		fx.Annotate(
			readstore.NewChargeReadStore,
			fx.As(new(queries.ChargeViewRepo)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionViewRepo)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Notification inbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notifier.Store)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
