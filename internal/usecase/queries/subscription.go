package queries

import (
	"context"

	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionQueries interface {
	Current(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error)
}

type SubscriptionViewRepo interface {
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	repo SubscriptionViewRepo
}

func NewSubscriptionQueries(repo SubscriptionViewRepo) SubscriptionQueries {
	return &subscriptionQueriesImpl{repo: repo}
}

// Current returns the caller's active or pending subscription with its event log.
func (q *subscriptionQueriesImpl) Current(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error) {
	view, err := q.repo.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, shared.NotFound(err, "open subscription")
	}
	return view, nil
}
