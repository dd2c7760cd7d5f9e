//go:build unit

package commands_test

import (
	"context"
	"testing"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/shared"
	"sportshub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("pending charge is cancelled with the reservation", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		actor := student()
		created, err := f.reservations.CreateReservation(ctx, commands.CreateReservationInput{
			ResourceType: "court", ResourceID: court.ID(), Start: at(10, 0), End: at(11, 0),
		}, actor)
		require.NoError(t, err)

		out, err := f.reservations.CancelReservation(ctx, created.Reservation.ID(), actor)

		require.NoError(t, err)
		assert.True(t, out.ChargeCancelled)
		assert.Equal(t, booking.StatusCancelled, f.uow.Reservation(created.Reservation.ID()).Status())
		charge := f.uow.Charge(created.Charge.ID())
		assert.Equal(t, billing.ChargeCancelled, charge.Status())
		for _, inst := range charge.Installments() {
			assert.Equal(t, billing.InstallmentCancelled, inst.Status())
		}
		assert.Equal(t, 1, f.recorder.Count("cancelled:true"))
		assert.Contains(t, f.notifier.Types(), shared.NotifyReservationCancelled)
	})

	t.Run("paid charge is left alone", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		actor := student()
		created, err := f.reservations.CreateReservation(ctx, commands.CreateReservationInput{
			ResourceType: "court", ResourceID: court.ID(), Start: at(10, 0), End: at(11, 0),
		}, actor)
		require.NoError(t, err)
		approve(t, f, created.Charge.ID(), actor, "evt-paid")

		out, err := f.reservations.CancelReservation(ctx, created.Reservation.ID(), actor)

		require.NoError(t, err)
		assert.False(t, out.ChargeCancelled)
		assert.Equal(t, billing.ChargePaid, f.uow.Charge(created.Charge.ID()).Status())
		assert.Equal(t, 1, f.recorder.Count("cancelled:false"))
	})

	t.Run("cancelling twice", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)
		owner := userActor(created.Reservation.UserID())
		_, err := f.reservations.CancelReservation(ctx, created.Reservation.ID(), owner)
		require.NoError(t, err)

		_, err = f.reservations.CancelReservation(ctx, created.Reservation.ID(), owner)

		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
	})

	t.Run("someone else's reservation", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)

		_, err := f.reservations.CancelReservation(ctx, created.Reservation.ID(), student())

		assert.True(t, errs.Is(err, errs.ErrForbidden))
		assert.Equal(t, booking.StatusPending, f.uow.Reservation(created.Reservation.ID()).Status())
	})

	t.Run("admin may cancel for the owner", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)

		out, err := f.reservations.CancelReservation(ctx, created.Reservation.ID(), admin())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, out.Reservation.Status())
		sent := f.notifier.Sent()
		assert.Equal(t, created.Reservation.UserID(), sent[len(sent)-1].UserID)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture()

		_, err := f.reservations.CancelReservation(ctx, uuid.New(), admin())

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("completed reservation cannot be cancelled", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)
		staff := admin()
		_, err := f.reservations.TransitionReservation(ctx, created.Reservation.ID(), "confirmed", staff)
		require.NoError(t, err)
		_, err = f.reservations.TransitionReservation(ctx, created.Reservation.ID(), "completed", staff)
		require.NoError(t, err)

		_, err = f.reservations.CancelReservation(ctx, created.Reservation.ID(), staff)

		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("cancelled slot can be booked again", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)
		_, err := f.reservations.CancelReservation(ctx, created.Reservation.ID(), admin())
		require.NoError(t, err)

		_, err = f.reservations.CreateReservation(ctx, commands.CreateReservationInput{
			ResourceType: "court", ResourceID: court.ID(), Start: at(10, 0), End: at(11, 0),
		}, student())

		assert.NoError(t, err)
	})
}

func TestTransitionReservation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		steps   []string
		wantErr error
		want    booking.Status
	}{
		{name: "confirm pending", steps: []string{"confirmed"}, want: booking.StatusConfirmed},
		{name: "complete confirmed", steps: []string{"confirmed", "completed"}, want: booking.StatusCompleted},
		{name: "no show", steps: []string{"confirmed", "no_show"}, want: booking.StatusNoShow},
		{name: "pending cannot complete", steps: []string{"completed"}, wantErr: errs.ErrInvalidTransition},
		{name: "terminal stays terminal", steps: []string{"confirmed", "no_show", "confirmed"}, wantErr: errs.ErrInvalidTransition},
		{name: "unknown status", steps: []string{"archived"}, wantErr: errs.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			court := builder.NewCourtBuilder().BuildDomain()
			f := newFixture(court)
			created := seedCourtBooking(t, f, court)

			var (
				res *booking.Reservation
				err error
			)
			for _, step := range tt.steps {
				res, err = f.reservations.TransitionReservation(ctx, created.Reservation.ID(), step, admin())
				if err != nil {
					break
				}
			}

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status())
			assert.Equal(t, tt.want, f.uow.Reservation(created.Reservation.ID()).Status())
		})
	}

	t.Run("students cannot change status", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)

		_, err := f.reservations.TransitionReservation(ctx, created.Reservation.ID(), "confirmed", userActor(created.Reservation.UserID()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("cancelled goes through cancellation and voids the charge", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		f := newFixture(court)
		created := seedCourtBooking(t, f, court)

		res, err := f.reservations.TransitionReservation(ctx, created.Reservation.ID(), "cancelled", admin())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, res.Status())
		assert.Equal(t, billing.ChargeCancelled, f.uow.Charge(created.Charge.ID()).Status())
	})
}
