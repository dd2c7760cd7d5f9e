package queries

import (
	"context"

	"sportshub/internal/domain/user"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChargeQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ChargeView, error)
}

type chargeQueriesImpl struct {
	repo ChargeViewRepo
}

func NewChargeQueries(repo ChargeViewRepo) ChargeQueries {
	return &chargeQueriesImpl{repo: repo}
}

func (q *chargeQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ChargeView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFound(err, "charge")
	}
	if !actor.CanActFor(view.UserID) {
		return nil, errs.WithReason(errs.ErrForbidden, "charge belongs to another user")
	}
	return view, nil
}
