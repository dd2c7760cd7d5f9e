package commands

import (
	"context"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/user"
	"sportshub/internal/infra"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput, actor user.Actor) (*ReservationResult, error)
	Enroll(ctx context.Context, in EnrollInput, actor user.Actor) (*ReservationResult, error)
	CancelReservation(ctx context.Context, id uuid.UUID, actor user.Actor) (*CancelReservationResult, error)
	TransitionReservation(ctx context.Context, id uuid.UUID, status string, actor user.Actor) (*booking.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	clock    clock.Clock
	loc      *time.Location
	notifier shared.Notifier
	recorder shared.Recorder
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	pricer booking.PriceCalculator,
	clk clock.Clock,
	loc *time.Location,
	notifier shared.Notifier,
	recorder shared.Recorder,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		services: &booking.Services{Clock: clk, PriceCalculator: pricer},
		clock:    clk,
		loc:      loc,
		notifier: notifier,
		recorder: recorder,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, in CreateReservationInput, actor user.Actor) (*ReservationResult, error) {
	resourceKind, err := catalog.ParseKind(in.ResourceType)
	if err != nil {
		return nil, err
	}
	kind, err := booking.KindForResource(resourceKind)
	if err != nil {
		return nil, err
	}
	if kind == booking.KindClassEnrollment {
		return uc.Enroll(ctx, EnrollInput{OccurrenceID: in.ResourceID, Notes: in.Notes}, actor)
	}

	slot, err := booking.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "commands.CreateReservation")
	defer span.End()
	span.SetAttributes(attribute.String("reservation.kind", kind.String()))

	var result ReservationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resource, err := tx.Reads().Resource(ctx, catalog.Ref{Kind: resourceKind, ID: in.ResourceID})
		if err != nil {
			return shared.NotFound(err, resourceKind.String())
		}
		var court *catalog.Resource
		if in.CourtID != nil {
			court, err = tx.Reads().Resource(ctx, catalog.Ref{Kind: catalog.KindCourt, ID: *in.CourtID})
			if err != nil {
				return shared.NotFound(err, catalog.KindCourt.String())
			}
		}

		res, err := booking.NewReservation(uc.services, booking.NewReservationParams{
			Kind:     kind,
			Resource: resource,
			Court:    court,
			UserID:   actor.ID,
			Slot:     slot,
			Notes:    in.Notes,
		})
		if err != nil {
			return err
		}

		occupied := res.Occupies()
		if err := tx.Locks().Acquire(ctx, tx.DB(), shared.LockKeys(occupied)...); err != nil {
			return err
		}
		av, err := shared.CheckWindow(ctx, tx.Reads(), occupied, res.Slot(), nil, uc.loc)
		if err != nil {
			return err
		}
		if !av.Available {
			return av.Err()
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return shared.SlotTaken(err)
		}
		charge, err := createCharge(ctx, tx, chargeRequest{
			Ref:     reservationReference(res),
			UserID:  res.UserID(),
			Amount:  res.Total(),
			DueDate: res.Slot().Start(),
		}, uc.clock.Now())
		if err != nil {
			return err
		}

		result = ReservationResult{Reservation: res, Charge: charge}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrSlotUnavailable) {
			uc.recorder.BookingConflict(resourceKind.String())
		}
		return nil, err
	}

	uc.recorder.ReservationCreated(kind.String())
	uc.notifier.Notify(ctx, shared.Notification{
		UserID:  actor.ID,
		Type:    shared.NotifyReservationCreated,
		Title:   "Reservation created",
		Message: "Your reservation for " + result.Reservation.Slot().In(uc.loc).String() + " is " + result.Reservation.Status().String() + " (" + chargeSummary(result.Charge) + ").",
		Link:    reservationLink(result.Reservation.ID()),
	})
	return &result, nil
}

// Enroll books a seat in a class occurrence. The occurrence row lock
// serialises concurrent enrollments so capacity holds.
func (uc *reservationUseCaseImpl) Enroll(ctx context.Context, in EnrollInput, actor user.Actor) (*ReservationResult, error) {
	ctx, span := tracer.Start(ctx, "commands.Enroll")
	defer span.End()

	var result ReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locks().LockClassOccurrence(ctx, tx.DB(), in.OccurrenceID); err != nil {
			return shared.NotFound(err, "class occurrence")
		}
		occ, err := tx.Reads().Resource(ctx, catalog.Ref{Kind: catalog.KindClassOccurrence, ID: in.OccurrenceID})
		if err != nil {
			return shared.NotFound(err, "class occurrence")
		}

		res, err := booking.NewReservation(uc.services, booking.NewReservationParams{
			Kind:     booking.KindClassEnrollment,
			Resource: occ,
			UserID:   actor.ID,
			Notes:    in.Notes,
		})
		if err != nil {
			return err
		}

		enrolled, err := tx.Reads().HasActiveEnrollment(ctx, occ.ID(), actor.ID)
		if err != nil {
			return err
		}
		if enrolled {
			return errs.WithReason(errs.ErrAlreadyEnrolled, "already enrolled in "+occ.Name())
		}
		av, err := shared.CheckOccurrence(ctx, tx.Reads(), occ)
		if err != nil {
			return err
		}
		if !av.Available {
			return errs.WithReason(errs.ErrClassFull, av.Reason)
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithReason(errs.ErrAlreadyEnrolled, "already enrolled in "+occ.Name())
			}
			return err
		}
		charge, err := createCharge(ctx, tx, chargeRequest{
			Ref:     reservationReference(res),
			UserID:  res.UserID(),
			Amount:  res.Total(),
			DueDate: occ.StartsAt(),
		}, uc.clock.Now())
		if err != nil {
			return err
		}

		result = ReservationResult{Reservation: res, Charge: charge}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.ReservationCreated(booking.KindClassEnrollment.String())
	uc.notifier.Notify(ctx, shared.Notification{
		UserID:  actor.ID,
		Type:    shared.NotifyEnrollmentCreated,
		Title:   "Enrollment created",
		Message: "You are enrolled for " + result.Reservation.Slot().In(uc.loc).String() + ".",
		Link:    reservationLink(result.Reservation.ID()),
	})
	return &result, nil
}

func reservationLink(id uuid.UUID) string {
	return "/reservations/" + id.String()
}

func chargeSummary(c *billing.Charge) string {
	if c == nil {
		return "no charge"
	}
	return "charge of " + c.Total().String()
}
