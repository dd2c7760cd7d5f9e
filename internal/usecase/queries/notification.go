package queries

import (
	"context"

	"github.com/google/uuid"
)

const DefaultNotificationLimit = 50

type NotificationQueries interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error)
}

type NotificationViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) List(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	limit = ValidateLimit(limit)
	return q.repo.ListByUser(ctx, userID, int32(limit))
}
