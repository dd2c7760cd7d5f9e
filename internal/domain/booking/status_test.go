//go:build unit

package booking_test

import (
	"testing"

	"sportshub/internal/domain/booking"
	"sportshub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	all := []booking.Status{
		booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled,
		booking.StatusCompleted, booking.StatusNoShow,
	}
	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCompleted, booking.StatusNoShow, booking.StatusCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	for _, s := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted, booking.StatusNoShow} {
		assert.True(t, s.IsTerminal(), s.String())
	}
	assert.False(t, booking.StatusPending.IsTerminal())
}

func TestStatusHolding(t *testing.T) {
	assert.True(t, booking.StatusPending.Holding())
	assert.True(t, booking.StatusConfirmed.Holding())
	assert.False(t, booking.StatusCancelled.Holding())
	assert.False(t, booking.StatusNoShow.Holding())
	assert.False(t, booking.StatusCompleted.Holding())
	assert.Equal(t, []string{"pending", "confirmed"}, booking.HoldingStatuses())
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus("no_show")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusNoShow, s)

	_, err = booking.ParseStatus("deleted")
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
}
