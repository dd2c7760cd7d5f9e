//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/queries"
	"sportshub/tests/common/builder"
	"sportshub/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(hour, minute int) time.Time {
	return time.Date(2030, 3, 2, hour, minute, 0, 0, time.UTC)
}

func seedReservation(t *testing.T, uow *fakeuow.UoW, kind booking.Kind, res, court *catalog.Resource, userID uuid.UUID, start, end time.Time) *booking.Reservation {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	r, err := booking.NewReservation(
		&booking.Services{Clock: clock.NewMockClock(day(8, 0)), PriceCalculator: booking.NewDefaultPriceCalculator()},
		booking.NewReservationParams{Kind: kind, Resource: res, Court: court, UserID: userID, Slot: slot},
	)
	require.NoError(t, err)
	uow.SeedReservation(r)
	return r
}

func TestAvailabilityQueries_Check(t *testing.T) {
	ctx := context.Background()
	pricer := booking.NewDefaultPriceCalculator()

	t.Run("free court is quoted pro rata", func(t *testing.T) {
		court := builder.NewCourtBuilder().WithRate(6000).BuildDomain()
		q := queries.NewAvailabilityQueries(fakeuow.New(court), pricer, time.UTC)

		got, err := q.Check(ctx, queries.AvailabilityInput{ResourceType: "court", ResourceID: court.ID(), Start: day(10, 0), End: day(11, 30)})

		require.NoError(t, err)
		assert.Equal(t, &queries.AvailabilityQuote{Available: true, PriceCents: 9000}, got)
	})

	t.Run("overlap is reported with the conflicting window", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		uow := fakeuow.New(court)
		seedReservation(t, uow, booking.KindCourtBooking, court, nil, uuid.New(), day(10, 0), day(11, 0))
		q := queries.NewAvailabilityQueries(uow, pricer, time.UTC)

		got, err := q.Check(ctx, queries.AvailabilityInput{ResourceType: "court", ResourceID: court.ID(), Start: day(10, 30), End: day(11, 30)})

		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Contains(t, got.Reason, "10:00-11:00")
	})

	t.Run("excluded reservation does not conflict with itself", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		uow := fakeuow.New(court)
		existing := seedReservation(t, uow, booking.KindCourtBooking, court, nil, uuid.New(), day(10, 0), day(11, 0))
		q := queries.NewAvailabilityQueries(uow, pricer, time.UTC)
		exclude := existing.ID()

		got, err := q.Check(ctx, queries.AvailabilityInput{
			ResourceType: "court", ResourceID: court.ID(), Start: day(10, 0), End: day(11, 0),
			ExcludeReservationID: &exclude,
		})

		require.NoError(t, err)
		assert.True(t, got.Available)
	})

	t.Run("instructor check includes the requested court", func(t *testing.T) {
		instructor := builder.NewInstructorBuilder().BuildDomain()
		court := builder.NewCourtBuilder().BuildDomain()
		uow := fakeuow.New(instructor, court)
		seedReservation(t, uow, booking.KindCourtBooking, court, nil, uuid.New(), day(9, 0), day(10, 30))
		q := queries.NewAvailabilityQueries(uow, pricer, time.UTC)
		courtID := court.ID()

		withCourt, err := q.Check(ctx, queries.AvailabilityInput{
			ResourceType: "instructor", ResourceID: instructor.ID(), CourtID: &courtID, Start: day(10, 0), End: day(11, 0),
		})
		require.NoError(t, err)
		alone, err := q.Check(ctx, queries.AvailabilityInput{
			ResourceType: "instructor", ResourceID: instructor.ID(), Start: day(10, 0), End: day(11, 0),
		})
		require.NoError(t, err)

		assert.False(t, withCourt.Available)
		assert.True(t, alone.Available)
	})

	t.Run("class occurrence answers by capacity", func(t *testing.T) {
		occ := builder.NewClassOccurrenceBuilder().With(func(b *builder.ResourceBuilder) { b.Capacity = 1 }).BuildDomain()
		uow := fakeuow.New(occ)
		q := queries.NewAvailabilityQueries(uow, pricer, time.UTC)

		before, err := q.Check(ctx, queries.AvailabilityInput{ResourceType: "class_occurrence", ResourceID: occ.ID()})
		require.NoError(t, err)
		seedReservation(t, uow, booking.KindClassEnrollment, occ, nil, uuid.New(), time.Time{}, time.Time{}.Add(time.Hour))
		after, err := q.Check(ctx, queries.AvailabilityInput{ResourceType: "class_occurrence", ResourceID: occ.ID()})
		require.NoError(t, err)

		assert.Equal(t, &queries.AvailabilityQuote{Available: true, PriceCents: 3500}, before)
		assert.False(t, after.Available)
		assert.Equal(t, "class is full", after.Reason)
	})

	t.Run("inactive resource is unavailable with a reason", func(t *testing.T) {
		court := builder.NewCourtBuilder().Inactive().BuildDomain()
		q := queries.NewAvailabilityQueries(fakeuow.New(court), pricer, time.UTC)

		got, err := q.Check(ctx, queries.AvailabilityInput{ResourceType: "court", ResourceID: court.ID(), Start: day(10, 0), End: day(11, 0)})

		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.NotEmpty(t, got.Reason)
	})

	t.Run("errors", func(t *testing.T) {
		court := builder.NewCourtBuilder().BuildDomain()
		q := queries.NewAvailabilityQueries(fakeuow.New(court), pricer, time.UTC)

		tests := []struct {
			name string
			in   queries.AvailabilityInput
			want error
		}{
			{name: "reversed window", in: queries.AvailabilityInput{ResourceType: "court", ResourceID: court.ID(), Start: day(11, 0), End: day(10, 0)}, want: errs.ErrInvalidWindow},
			{name: "unknown type", in: queries.AvailabilityInput{ResourceType: "sauna", ResourceID: court.ID(), Start: day(10, 0), End: day(11, 0)}, want: errs.ErrInvalidResource},
			{name: "plan", in: queries.AvailabilityInput{ResourceType: "plan", ResourceID: uuid.New()}, want: errs.ErrInvalidResource},
			{name: "unknown court", in: queries.AvailabilityInput{ResourceType: "court", ResourceID: uuid.New(), Start: day(10, 0), End: day(11, 0)}, want: errs.ErrNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := q.Check(ctx, tt.in)
				assert.True(t, errs.Is(err, tt.want), "got %v", err)
			})
		}
	})
}
