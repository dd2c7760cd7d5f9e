package queries

import (
	"context"
	"time"

	"sportshub/internal/domain/user"
	"sportshub/internal/infra"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ChargeViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ChargeView, error)
	FindLatestByReference(ctx context.Context, referenceID uuid.UUID) (*ChargeView, error)
}

type reservationQueriesImpl struct {
	repo    ReservationViewRepo
	charges ChargeViewRepo
}

func NewReservationQueries(repo ReservationViewRepo, charges ChargeViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, charges: charges}
}

// GetByID loads the reservation and its charge concurrently. Ownership is
// checked once both reads are back.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationDetail, error) {
	var (
		view   *ReservationView
		charge *ChargeView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := q.repo.FindByID(gctx, id)
		if err != nil {
			return shared.NotFound(err, "reservation")
		}
		view = v
		return nil
	})
	g.Go(func() error {
		c, err := q.charges.FindLatestByReference(gctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		charge = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !actor.CanActFor(view.UserID) {
		return nil, errs.WithReason(errs.ErrForbidden, "reservation belongs to another user")
	}
	return &ReservationDetail{Reservation: view, Charge: charge}, nil
}

// ListByUser pages newest first. The next cursor is nil on the last page.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	fetch := int32(limit + 1)

	var (
		items []*ReservationListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.repo.FindByUserFirstPage(ctx, userID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, errs.Mark(errs.Wrap(derr, "invalid cursor"), errs.ErrValidation)
		}
		items, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(items) <= limit {
		return items, nil, nil
	}
	items = items[:limit]
	last := items[len(items)-1]
	return items, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
