package readstore

import (
	"context"
	"encoding/json"

	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadQueries interface {
	GetOpenSubscriptionViewByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetOpenSubscriptionViewByUserRow, error)
	ListSubscriptionEvents(ctx context.Context, db sqlc.DBTX, subscriptionID uuid.UUID) ([]sqlc.SubscriptionEvent, error)
	HasOpenSubscription(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (bool, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionReadQueries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionReadStore) HasOpen(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasOpenSubscription(ctx, r.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open subscription", err)
	}
	return ok, nil
}

// FindOpenByUser returns the user's active or pending subscription with its
// event log in occurrence order.
func (r *SubscriptionReadStore) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*queries.SubscriptionView, error) {
	row, err := r.queries.GetOpenSubscriptionViewByUser(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription view", err)
	}

	events, err := r.queries.ListSubscriptionEvents(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscription events", err)
	}

	view := &queries.SubscriptionView{
		ID:             row.ID,
		UserID:         row.UserID,
		PlanID:         row.PlanID,
		PlanName:       row.PlanName,
		PlanPriceCents: pgconv.Int64PtrFromPgtype(row.PlanPriceCents),
		CycleMonths:    row.CycleMonths,
		Status:         row.Status,
		StartDate:      pgconv.TimeFromPgtype(row.StartDate),
		EndDate:        pgconv.TimePtrFromPgtype(row.EndDate),
		NextDueDate:    pgconv.TimeFromPgtype(row.NextDueDate),
		AutoRenew:      row.AutoRenew,
		Events:         make([]queries.SubscriptionEventView, 0, len(events)),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, e := range events {
		view.Events = append(view.Events, queries.SubscriptionEventView{
			ID:         e.ID,
			Type:       e.Type,
			Payload:    json.RawMessage(e.Payload),
			OccurredAt: pgconv.TimeFromPgtype(e.OccurredAt),
		})
	}
	return view, nil
}
