package shared

import (
	"context"
	"slices"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"

	"github.com/google/uuid"
)

// CheckWindow evaluates every windowed resource in refs against window and
// returns the first conflict found.
func CheckWindow(ctx context.Context, reads CommandReads, refs []catalog.Ref, window booking.TimeSlot, exclude *uuid.UUID, loc *time.Location) (booking.Availability, error) {
	for _, ref := range refs {
		occ, err := reads.Occupancy(ctx, ref, window)
		if err != nil {
			return booking.Availability{}, err
		}
		if av := booking.CheckAvailability(window, occ, exclude, loc); !av.Available {
			return av, nil
		}
	}
	return booking.Availability{Available: true}, nil
}

// CheckOccurrence answers availability for a class occurrence by capacity.
func CheckOccurrence(ctx context.Context, reads CommandReads, occ *catalog.Resource) (booking.Availability, error) {
	enrolled, err := reads.ActiveEnrollments(ctx, occ.ID())
	if err != nil {
		return booking.Availability{}, err
	}
	return booking.CheckCapacity(occ, enrolled), nil
}

// LockKeys names the advisory locks guarding refs, sorted so concurrent
// writers always acquire them in the same order.
func LockKeys(refs []catalog.Ref) []string {
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, lockKey(ref))
	}
	slices.Sort(keys)
	keys = slices.Compact(keys)
	return keys
}

func lockKey(ref catalog.Ref) string {
	return ref.Kind.String() + ":" + ref.ID.String()
}
