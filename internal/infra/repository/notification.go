package repository

import (
	"context"
	"time"

	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the notification in the user's inbox and returns its id.
func (r *NotificationRepository) Create(ctx context.Context, n shared.Notification, at time.Time) (uuid.UUID, error) {
	id := uuid.New()
	params := sqlc.CreateNotificationParams{
		ID:        id,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      pgconv.OptionalStringToPgtype(n.Link),
		CreatedAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.CreateNotification(ctx, r.db, params); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return id, nil
}
