package queries

import (
	"context"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityInput asks whether a resource is free. Start and End are
// ignored for class occurrences, which have a fixed window.
type AvailabilityInput struct {
	ResourceType         string
	ResourceID           uuid.UUID
	CourtID              *uuid.UUID
	Start                time.Time
	End                  time.Time
	ExcludeReservationID *uuid.UUID
}

type AvailabilityQueries interface {
	Check(ctx context.Context, in AvailabilityInput) (*AvailabilityQuote, error)
}

type availabilityQueriesImpl struct {
	reads  shared.CommandReads
	pricer booking.PriceCalculator
	loc    *time.Location
}

func NewAvailabilityQueries(uow shared.UnitOfWork, pricer booking.PriceCalculator, loc *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reads:  uow.CommandReads(),
		pricer: pricer,
		loc:    loc,
	}
}

// Check answers availability and quotes the price. It never writes; the
// reservation writer repeats the check under lock.
func (q *availabilityQueriesImpl) Check(ctx context.Context, in AvailabilityInput) (*AvailabilityQuote, error) {
	kind, err := catalog.ParseKind(in.ResourceType)
	if err != nil {
		return nil, err
	}
	if _, err := booking.KindForResource(kind); err != nil {
		return nil, err
	}

	var slot booking.TimeSlot
	if kind.Windowed() {
		slot, err = booking.NewTimeSlot(in.Start, in.End)
		if err != nil {
			return nil, err
		}
	}

	resource, err := q.reads.Resource(ctx, catalog.Ref{Kind: kind, ID: in.ResourceID})
	if err != nil {
		return nil, shared.NotFound(err, kind.String())
	}
	if err := resource.EnsureBookable(); err != nil {
		return &AvailabilityQuote{Available: false, Reason: errs.Reason(err)}, nil
	}

	var av booking.Availability
	if kind.Windowed() {
		refs := []catalog.Ref{resource.Ref()}
		if in.CourtID != nil && kind == catalog.KindInstructor {
			court, err := q.reads.Resource(ctx, catalog.Ref{Kind: catalog.KindCourt, ID: *in.CourtID})
			if err != nil {
				return nil, shared.NotFound(err, catalog.KindCourt.String())
			}
			if err := court.EnsureBookable(); err != nil {
				return &AvailabilityQuote{Available: false, Reason: errs.Reason(err)}, nil
			}
			refs = append(refs, court.Ref())
		}
		av, err = shared.CheckWindow(ctx, q.reads, refs, slot, in.ExcludeReservationID, q.loc)
	} else {
		av, err = shared.CheckOccurrence(ctx, q.reads, resource)
		if err == nil {
			slot, err = booking.NewTimeSlot(resource.StartsAt(), resource.EndsAt())
		}
	}
	if err != nil {
		return nil, err
	}

	price, err := q.pricer.PriceFor(resource, slot)
	if err != nil {
		return nil, err
	}
	return &AvailabilityQuote{
		Available:  av.Available,
		Reason:     av.Reason,
		PriceCents: price.Cents(),
	}, nil
}
