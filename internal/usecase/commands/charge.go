package commands

import (
	"context"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/money"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

type chargeRequest struct {
	Ref     billing.Reference
	UserID  uuid.UUID
	Amount  money.Money
	DueDate time.Time
	Plan    *billing.InstallmentPlan
}

// createCharge bills req inside tx. Free references yield no charge.
func createCharge(ctx context.Context, tx shared.Tx, req chargeRequest, now time.Time) (*billing.Charge, error) {
	charge, err := billing.NewCharge(req.Ref, req.UserID, req.Amount, req.DueDate, req.Plan, now)
	if err != nil || charge == nil {
		return nil, err
	}
	if err := tx.Charges().Create(ctx, tx.DB(), charge); err != nil {
		return nil, err
	}
	return charge, nil
}

// cancelPendingCharges voids every charge of ref nobody has paid into and
// reports how many changed.
func cancelPendingCharges(ctx context.Context, tx shared.Tx, ref billing.Reference, now time.Time) (int, error) {
	charges, err := tx.Charges().ListByReferenceForUpdate(ctx, tx.DB(), ref)
	if err != nil {
		return 0, err
	}
	cancelled := 0
	for _, c := range charges {
		if !c.Cancel(now) {
			continue
		}
		if err := tx.Charges().Save(ctx, tx.DB(), c); err != nil {
			return 0, err
		}
		cancelled++
	}
	return cancelled, nil
}

func reservationReference(res *booking.Reservation) billing.Reference {
	return billing.Reference{Kind: billing.ReferenceKind(res.Kind()), ID: res.ID()}
}

func subscriptionReference(id uuid.UUID) billing.Reference {
	return billing.Reference{Kind: billing.RefSubscription, ID: id}
}
