package booking

import (
	"time"
	"unicode/utf8"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxNotesLength counts characters, matching the request binding limit.
const MaxNotesLength = 500

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Reservation is a court booking, a personal session or a class enrollment.
// Class enrollments carry the occurrence window for display but never take
// part in the overlap check.
type Reservation struct {
	id         uuid.UUID
	kind       Kind
	resourceID uuid.UUID
	courtID    *uuid.UUID
	userID     uuid.UUID
	slot       TimeSlot
	total      money.Money
	status     Status
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

type NewReservationParams struct {
	Kind     Kind
	Resource *catalog.Resource
	// Court additionally occupied by a personal session, if any.
	Court  *catalog.Resource
	UserID uuid.UUID
	Slot   TimeSlot
	Notes  string
}

// NewReservation validates the request against the catalog entry and prices it.
// The reservation starts pending; zero-priced enrollments start confirmed since
// there is nothing to pay.
func NewReservation(services *Services, p NewReservationParams) (*Reservation, error) {
	if !p.Kind.IsValid() {
		return nil, errs.WithReason(errs.ErrInvalidResource, "unknown reservation kind")
	}
	if p.Resource == nil || p.Resource.Kind() != p.Kind.ResourceKind() {
		return nil, errs.WithReason(errs.ErrInvalidResource, p.Kind.String()+" requires a "+p.Kind.ResourceKind().String())
	}
	if err := p.Resource.EnsureBookable(); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(p.Notes) > MaxNotesLength {
		return nil, errs.WithReason(errs.ErrValidation, "notes are too long")
	}

	slot := p.Slot
	if p.Kind == KindClassEnrollment {
		var err error
		slot, err = NewTimeSlot(p.Resource.StartsAt(), p.Resource.EndsAt())
		if err != nil {
			return nil, err
		}
	} else if slot.IsZero() {
		return nil, errs.WithReason(errs.ErrInvalidWindow, "start and end are required")
	}

	var courtID *uuid.UUID
	if p.Court != nil {
		if p.Kind != KindPersonalSession || p.Court.Kind() != catalog.KindCourt {
			return nil, errs.WithReason(errs.ErrInvalidResource, "only personal sessions may reserve an extra court")
		}
		if err := p.Court.EnsureBookable(); err != nil {
			return nil, err
		}
		id := p.Court.ID()
		courtID = &id
	}

	total, err := services.PriceCalculator.PriceFor(p.Resource, slot)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if p.Kind == KindClassEnrollment && total.IsZero() {
		status = StatusConfirmed
	}

	now := services.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		kind:       p.Kind,
		resourceID: p.Resource.ID(),
		courtID:    courtID,
		userID:     p.UserID,
		slot:       slot,
		total:      total,
		status:     status,
		notes:      p.Notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	kind Kind,
	resourceID uuid.UUID,
	courtID *uuid.UUID,
	userID uuid.UUID,
	slot TimeSlot,
	total money.Money,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		kind:       kind,
		resourceID: resourceID,
		courtID:    courtID,
		userID:     userID,
		slot:       slot,
		total:      total,
		status:     status,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel moves a pending or confirmed reservation to cancelled.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return errs.WithReason(errs.ErrAlreadyCancelled, "reservation is already cancelled")
	}
	return r.TransitionTo(StatusCancelled, now)
}

func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return errs.WithReason(errs.ErrInvalidTransition,
			"cannot move reservation from "+r.status.String()+" to "+next.String())
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// Occupies lists the windowed resources this reservation blocks while holding.
func (r *Reservation) Occupies() []catalog.Ref {
	if r.kind == KindClassEnrollment {
		return nil
	}
	refs := []catalog.Ref{{Kind: r.kind.ResourceKind(), ID: r.resourceID}}
	if r.courtID != nil {
		refs = append(refs, catalog.Ref{Kind: catalog.KindCourt, ID: *r.courtID})
	}
	return refs
}

func (r *Reservation) ResourceRef() catalog.Ref {
	return catalog.Ref{Kind: r.kind.ResourceKind(), ID: r.resourceID}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Kind() Kind            { return r.kind }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) CourtID() *uuid.UUID   { return r.courtID }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) Slot() TimeSlot        { return r.slot }
func (r *Reservation) Total() money.Money    { return r.total }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Notes() string         { return r.notes }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
