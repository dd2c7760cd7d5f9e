//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"
	"sportshub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services() *booking.Services {
	return &booking.Services{
		Clock:           clock.NewMockClock(at(8, 0)),
		PriceCalculator: booking.NewDefaultPriceCalculator(),
	}
}

type testCase struct {
	name   string
	mutate func(*booking.NewReservationParams)
	errIs  error
}

func runCases(t *testing.T, base func() booking.NewReservationParams, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			if tc.mutate != nil {
				tc.mutate(&p)
			}
			res, err := booking.NewReservation(services(), p)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, res)
		})
	}
}

func courtParams(t *testing.T) func() booking.NewReservationParams {
	return func() booking.NewReservationParams {
		return booking.NewReservationParams{
			Kind:     booking.KindCourtBooking,
			Resource: builder.NewCourtBuilder().WithRate(6000).BuildDomain(),
			UserID:   uuid.New(),
			Slot:     mustSlot(t, at(10, 0), at(12, 0)),
		}
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("court booking is pending and priced", func(t *testing.T) {
		p := courtParams(t)()
		res, err := booking.NewReservation(services(), p)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, booking.StatusPending, res.Status())
		assert.Equal(t, money.FromCents(12000), res.Total())
		assert.Equal(t, p.Resource.ID(), res.ResourceID())
		assert.Equal(t, at(8, 0), res.CreatedAt())
		assert.Equal(t, []catalog.Ref{{Kind: catalog.KindCourt, ID: p.Resource.ID()}}, res.Occupies())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, courtParams(t), []testCase{
			{
				name:   "inactive court",
				mutate: func(p *booking.NewReservationParams) { p.Resource = builder.NewCourtBuilder().Inactive().BuildDomain() },
				errIs:  errs.ErrResourceInactive,
			},
			{
				name:   "resource kind mismatch",
				mutate: func(p *booking.NewReservationParams) { p.Resource = builder.NewInstructorBuilder().BuildDomain() },
				errIs:  errs.ErrInvalidResource,
			},
			{
				name:   "missing window",
				mutate: func(p *booking.NewReservationParams) { p.Slot = booking.TimeSlot{} },
				errIs:  errs.ErrInvalidWindow,
			},
			{
				name: "court without rate",
				mutate: func(p *booking.NewReservationParams) {
					p.Resource = builder.NewCourtBuilder().WithoutRate().BuildDomain()
				},
				errIs: errs.ErrInvalidResource,
			},
			{
				name:   "notes at limit",
				mutate: func(p *booking.NewReservationParams) { p.Notes = strings.Repeat("a", booking.MaxNotesLength) },
			},
			{
				name:   "multibyte notes at limit",
				mutate: func(p *booking.NewReservationParams) { p.Notes = strings.Repeat("é", booking.MaxNotesLength) },
			},
			{
				name:   "notes too long",
				mutate: func(p *booking.NewReservationParams) { p.Notes = strings.Repeat("a", booking.MaxNotesLength+1) },
				errIs:  errs.ErrValidation,
			},
			{
				name: "extra court on a court booking",
				mutate: func(p *booking.NewReservationParams) {
					p.Court = builder.NewCourtBuilder().BuildDomain()
				},
				errIs: errs.ErrInvalidResource,
			},
		})
	})

	t.Run("personal session with court occupies both", func(t *testing.T) {
		inst := builder.NewInstructorBuilder().WithRate(9000).BuildDomain()
		court := builder.NewCourtBuilder().BuildDomain()

		res, err := booking.NewReservation(services(), booking.NewReservationParams{
			Kind:     booking.KindPersonalSession,
			Resource: inst,
			Court:    court,
			UserID:   uuid.New(),
			Slot:     mustSlot(t, at(10, 0), at(10, 45)),
		})
		require.NoError(t, err)

		assert.Equal(t, money.FromCents(9000), res.Total(), "minimum one billable hour")
		assert.Equal(t, []catalog.Ref{
			{Kind: catalog.KindInstructor, ID: inst.ID()},
			{Kind: catalog.KindCourt, ID: court.ID()},
		}, res.Occupies())
	})

	t.Run("personal session with inactive court", func(t *testing.T) {
		_, err := booking.NewReservation(services(), booking.NewReservationParams{
			Kind:     booking.KindPersonalSession,
			Resource: builder.NewInstructorBuilder().BuildDomain(),
			Court:    builder.NewCourtBuilder().Inactive().BuildDomain(),
			UserID:   uuid.New(),
			Slot:     mustSlot(t, at(10, 0), at(11, 0)),
		})
		assert.True(t, errs.Is(err, errs.ErrResourceInactive))
	})

	t.Run("class enrollment takes the occurrence window", func(t *testing.T) {
		occ := builder.NewClassOccurrenceBuilder().WithPrice(3500).BuildDomain()
		res, err := booking.NewReservation(services(), booking.NewReservationParams{
			Kind:     booking.KindClassEnrollment,
			Resource: occ,
			UserID:   uuid.New(),
		})
		require.NoError(t, err)

		assert.Equal(t, occ.StartsAt(), res.Slot().Start())
		assert.Equal(t, booking.StatusPending, res.Status())
		assert.Equal(t, money.FromCents(3500), res.Total())
		assert.Empty(t, res.Occupies())
	})

	t.Run("plan-included enrollment is confirmed and free", func(t *testing.T) {
		occ := builder.NewClassOccurrenceBuilder().WithoutPrice().BuildDomain()
		res, err := booking.NewReservation(services(), booking.NewReservationParams{
			Kind:     booking.KindClassEnrollment,
			Resource: occ,
			UserID:   uuid.New(),
		})
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, res.Status())
		assert.True(t, res.Total().IsZero())
	})
}

func TestReservationCancel(t *testing.T) {
	now := at(9, 0)
	reconstruct := func(status booking.Status) *booking.Reservation {
		return booking.ReconstructReservation(uuid.New(), booking.KindCourtBooking, uuid.New(), nil, uuid.New(),
			mustSlot(t, at(10, 0), at(12, 0)), money.FromCents(12000), status, "", now, now)
	}

	for _, s := range []booking.Status{booking.StatusPending, booking.StatusConfirmed} {
		t.Run("from "+s.String(), func(t *testing.T) {
			res := reconstruct(s)
			require.NoError(t, res.Cancel(now.Add(time.Minute)))
			assert.Equal(t, booking.StatusCancelled, res.Status())
			assert.Equal(t, now.Add(time.Minute), res.UpdatedAt())
		})
	}

	t.Run("twice", func(t *testing.T) {
		res := reconstruct(booking.StatusPending)
		require.NoError(t, res.Cancel(now))
		err := res.Cancel(now)
		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
	})

	for _, s := range []booking.Status{booking.StatusCompleted, booking.StatusNoShow} {
		t.Run("terminal "+s.String(), func(t *testing.T) {
			err := reconstruct(s).Cancel(now)
			assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		})
	}
}

func TestKindLookup(t *testing.T) {
	k, err := booking.KindForResource(catalog.KindInstructor)
	require.NoError(t, err)
	assert.Equal(t, booking.KindPersonalSession, k)

	_, err = booking.KindForResource(catalog.KindPlan)
	assert.True(t, errs.Is(err, errs.ErrInvalidResource))

	_, err = booking.ParseKind("sauna_booking")
	assert.True(t, errs.Is(err, errs.ErrInvalidResource))
}
