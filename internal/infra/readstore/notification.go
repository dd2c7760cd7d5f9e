package readstore

import (
	"context"

	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notification, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, sqlc.ListNotificationsByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	out := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		out[i] = &queries.NotificationView{
			ID:        row.ID,
			Type:      row.Type,
			Title:     row.Title,
			Message:   row.Message,
			Link:      pgconv.StringPtrFromPgtype(row.Link),
			ReadAt:    pgconv.TimePtrFromPgtype(row.ReadAt),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
