package commands

import (
	"context"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/user"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

// CancelReservation cancels the reservation and voids its charge when nothing
// has been paid yet. Paid or partially paid charges are left for refunding.
func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID, actor user.Actor) (*CancelReservationResult, error) {
	ctx, span := tracer.Start(ctx, "commands.CancelReservation")
	defer span.End()

	var result CancelReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.NotFound(err, "reservation")
		}
		if !actor.CanActFor(res.UserID()) {
			return errs.WithReason(errs.ErrForbidden, "only the owner or an admin may cancel this reservation")
		}

		now := uc.clock.Now()
		if err := res.Cancel(now); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		cancelled, err := cancelPendingCharges(ctx, tx, reservationReference(res), now)
		if err != nil {
			return err
		}

		result = CancelReservationResult{Reservation: res, ChargeCancelled: cancelled > 0}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.ReservationCancelled(result.ChargeCancelled)
	msg := "Your reservation for " + result.Reservation.Slot().In(uc.loc).String() + " was cancelled."
	if result.ChargeCancelled {
		msg += " The pending charge was cancelled too."
	}
	uc.notifier.Notify(ctx, shared.Notification{
		UserID:  result.Reservation.UserID(),
		Type:    shared.NotifyReservationCancelled,
		Title:   "Reservation cancelled",
		Message: msg,
		Link:    reservationLink(result.Reservation.ID()),
	})
	return &result, nil
}

// TransitionReservation lets staff confirm, complete or mark a reservation as
// a no-show. Cancelling goes through CancelReservation so charges follow.
func (uc *reservationUseCaseImpl) TransitionReservation(ctx context.Context, id uuid.UUID, status string, actor user.Actor) (*booking.Reservation, error) {
	if !actor.Role.IsAdmin() {
		return nil, errs.WithReason(errs.ErrForbidden, "only admins may change reservation status")
	}
	next, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if next == booking.StatusCancelled {
		out, err := uc.CancelReservation(ctx, id, actor)
		if err != nil {
			return nil, err
		}
		return out.Reservation, nil
	}

	ctx, span := tracer.Start(ctx, "commands.TransitionReservation")
	defer span.End()

	var res *booking.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.NotFound(err, "reservation")
		}
		if err := res.TransitionTo(next, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Reservations().UpdateStatus(ctx, tx.DB(), res)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, shared.Notification{
		UserID:  res.UserID(),
		Type:    shared.NotifyReservationStatus,
		Title:   "Reservation updated",
		Message: "Your reservation for " + res.Slot().In(uc.loc).String() + " is now " + res.Status().String() + ".",
		Link:    reservationLink(res.ID()),
	})
	return res, nil
}
