package repository

import (
	"context"
	"time"

	"sportshub/internal/domain/subscription"
	"sportshub/internal/infra"
	"sportshub/internal/infra/repository/converter"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionWriteQueries interface {
	CreateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubscriptionParams) error
	GetSubscriptionForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Subscription, error)
	UpdateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSubscriptionParams) error
	InsertSubscriptionEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSubscriptionEventParams) error
	ListSubscriptionsDueForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSubscriptionsDueForUpdateParams) ([]sqlc.Subscription, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) error {
	if err := r.queries.CreateSubscription(ctx, tx, converter.SubscriptionToCreateParams(sub)); err != nil {
		return infra.WrapRepoErr("failed to create subscription", err)
	}
	return r.flushEvents(ctx, tx, sub)
}

func (r *SubscriptionRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*subscription.Subscription, error) {
	row, err := r.queries.GetSubscriptionForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock subscription", err)
	}
	return converter.SubscriptionToDomain(row), nil
}

// Save updates the subscription row and appends the events it recorded.
func (r *SubscriptionRepository) Save(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) error {
	if err := r.queries.UpdateSubscription(ctx, tx, converter.SubscriptionToUpdateParams(sub)); err != nil {
		return infra.WrapRepoErr("failed to update subscription", err)
	}
	return r.flushEvents(ctx, tx, sub)
}

// ListDueForUpdate claims active subscriptions whose next due date has passed.
// Rows locked by another worker are skipped.
func (r *SubscriptionRepository) ListDueForUpdate(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*subscription.Subscription, error) {
	rows, err := r.queries.ListSubscriptionsDueForUpdate(ctx, tx, sqlc.ListSubscriptionsDueForUpdateParams{
		DueBefore: pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due subscriptions", err)
	}
	subs := make([]*subscription.Subscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, converter.SubscriptionToDomain(row))
	}
	return subs, nil
}

func (r *SubscriptionRepository) flushEvents(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) error {
	for _, evt := range sub.PullEvents() {
		if err := r.queries.InsertSubscriptionEvent(ctx, tx, converter.EventToInsertParams(sub, evt)); err != nil {
			return infra.WrapRepoErr("failed to append subscription event", err)
		}
	}
	return nil
}
