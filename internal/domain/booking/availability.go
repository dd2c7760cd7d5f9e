package booking

import (
	"time"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Occupancy is one existing reservation holding a window on a resource.
type Occupancy struct {
	ReservationID uuid.UUID
	Resource      catalog.Ref
	Slot          TimeSlot
	Status        Status
}

type Availability struct {
	Available bool
	Reason    string
	Conflict  *Occupancy
}

// CheckAvailability decides whether window is free given the candidate
// occupancies of one resource. Candidates may be a superset; only holding
// statuses that overlap the window count. exclude skips one reservation.
func CheckAvailability(window TimeSlot, candidates []Occupancy, exclude *uuid.UUID, loc *time.Location) Availability {
	for i := range candidates {
		c := candidates[i]
		if exclude != nil && c.ReservationID == *exclude {
			continue
		}
		if !c.Status.Holding() || !c.Slot.Overlaps(window) {
			continue
		}
		return Availability{
			Available: false,
			Reason:    conflictReason(c, loc),
			Conflict:  &c,
		}
	}
	return Availability{Available: true}
}

// Err converts an unavailable result into a SlotUnavailable error carrying the reason.
func (a Availability) Err() error {
	if a.Available {
		return nil
	}
	return errs.WithReason(errs.ErrSlotUnavailable, a.Reason)
}

func conflictReason(c Occupancy, loc *time.Location) string {
	return c.Resource.Kind.String() + " slot conflicts with existing reservation " + c.Slot.In(loc).String()
}

// CheckCapacity answers availability for fixed-window class occurrences.
func CheckCapacity(occ *catalog.Resource, enrolled int) Availability {
	if occ.Capacity() > 0 && enrolled >= occ.Capacity() {
		return Availability{Available: false, Reason: "class is full"}
	}
	return Availability{Available: true}
}
