// Package catalog describes the bookable and billable things the facility
// offers: courts, instructors, class occurrences and plans.
package catalog

import (
	"time"

	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCourt           Kind = "court"
	KindInstructor      Kind = "instructor"
	KindClassOccurrence Kind = "class_occurrence"
	KindPlan            Kind = "plan"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := pricingModes[k]
	return ok
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", errs.WithReason(errs.ErrInvalidResource, "unknown resource type "+s)
	}
	return k, nil
}

type PricingMode int

const (
	// PricingHourly bills the hourly rate against the window duration.
	PricingHourly PricingMode = iota + 1
	// PricingFlatOptional bills a flat unit price; absent price means included.
	PricingFlatOptional
	// PricingFlat bills a mandatory flat price per cycle.
	PricingFlat
)

var pricingModes = map[Kind]PricingMode{
	KindCourt:           PricingHourly,
	KindInstructor:      PricingHourly,
	KindClassOccurrence: PricingFlatOptional,
	KindPlan:            PricingFlat,
}

func (k Kind) PricingMode() PricingMode {
	return pricingModes[k]
}

// Windowed kinds are booked for a caller-chosen window and take part in the
// overlap check.
func (k Kind) Windowed() bool {
	return k.PricingMode() == PricingHourly
}

// Resource is the read-only catalog view the booking core works with.
// Fields not relevant to a kind stay zero.
type Resource struct {
	kind       Kind
	id         uuid.UUID
	name       string
	active     bool
	hourlyRate *money.Money
	unitPrice  *money.Money

	// class occurrence
	startsAt time.Time
	endsAt   time.Time
	capacity int

	// plan
	cycleMonths int
}

func NewCourt(id uuid.UUID, name string, active bool, hourlyRate *money.Money) *Resource {
	return &Resource{kind: KindCourt, id: id, name: name, active: active, hourlyRate: hourlyRate}
}

func NewInstructor(id uuid.UUID, name string, active bool, hourlyRate *money.Money) *Resource {
	return &Resource{kind: KindInstructor, id: id, name: name, active: active, hourlyRate: hourlyRate}
}

func NewClassOccurrence(id uuid.UUID, name string, active bool, unitPrice *money.Money, startsAt, endsAt time.Time, capacity int) *Resource {
	return &Resource{
		kind:      KindClassOccurrence,
		id:        id,
		name:      name,
		active:    active,
		unitPrice: unitPrice,
		startsAt:  startsAt,
		endsAt:    endsAt,
		capacity:  capacity,
	}
}

func NewPlan(id uuid.UUID, name string, active bool, price *money.Money, cycleMonths int) *Resource {
	return &Resource{kind: KindPlan, id: id, name: name, active: active, unitPrice: price, cycleMonths: cycleMonths}
}

func (r *Resource) Kind() Kind               { return r.kind }
func (r *Resource) ID() uuid.UUID            { return r.id }
func (r *Resource) Name() string             { return r.name }
func (r *Resource) Active() bool             { return r.active }
func (r *Resource) HourlyRate() *money.Money { return r.hourlyRate }
func (r *Resource) UnitPrice() *money.Money  { return r.unitPrice }
func (r *Resource) StartsAt() time.Time      { return r.startsAt }
func (r *Resource) EndsAt() time.Time        { return r.endsAt }
func (r *Resource) Capacity() int            { return r.capacity }
func (r *Resource) CycleMonths() int         { return r.cycleMonths }
func (r *Resource) Ref() Ref                 { return Ref{Kind: r.kind, ID: r.id} }

// EnsureBookable rejects resources whose status is not active.
func (r *Resource) EnsureBookable() error {
	if !r.active {
		return errs.WithReason(errs.ErrResourceInactive, r.kind.String()+" "+r.name+" is not active")
	}
	return nil
}

// Ref identifies a catalog entry without loading it.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

func (r Ref) String() string {
	return r.Kind.String() + ":" + r.ID.String()
}
