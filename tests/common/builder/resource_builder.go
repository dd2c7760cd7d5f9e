//go:build unit || e2e

package builder

import (
	"time"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	Kind        catalog.Kind
	ID          uuid.UUID
	Name        string
	Active      bool
	RateCents   *int64
	PriceCents  *int64
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    int
	CycleMonths int
}

func NewCourtBuilder() *ResourceBuilder {
	rate := int64(6000)
	return &ResourceBuilder{
		Kind:      catalog.KindCourt,
		ID:        uuid.New(),
		Name:      "Court 1",
		Active:    true,
		RateCents: &rate,
	}
}

func NewInstructorBuilder() *ResourceBuilder {
	rate := int64(9000)
	return &ResourceBuilder{
		Kind:      catalog.KindInstructor,
		ID:        uuid.New(),
		Name:      "Ana Coach",
		Active:    true,
		RateCents: &rate,
	}
}

func NewClassOccurrenceBuilder() *ResourceBuilder {
	price := int64(3500)
	start := time.Date(2030, 3, 4, 18, 0, 0, 0, time.UTC)
	return &ResourceBuilder{
		Kind:       catalog.KindClassOccurrence,
		ID:         uuid.New(),
		Name:       "Beach Tennis Basics",
		Active:     true,
		PriceCents: &price,
		StartsAt:   start,
		EndsAt:     start.Add(time.Hour),
		Capacity:   10,
	}
}

func NewPlanBuilder() *ResourceBuilder {
	price := int64(9990)
	return &ResourceBuilder{
		Kind:        catalog.KindPlan,
		ID:          uuid.New(),
		Name:        "Monthly Unlimited",
		Active:      true,
		PriceCents:  &price,
		CycleMonths: 1,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) Inactive() *ResourceBuilder {
	b.Active = false
	return b
}

func (b *ResourceBuilder) WithRate(cents int64) *ResourceBuilder {
	b.RateCents = &cents
	return b
}

func (b *ResourceBuilder) WithoutRate() *ResourceBuilder {
	b.RateCents = nil
	return b
}

func (b *ResourceBuilder) WithPrice(cents int64) *ResourceBuilder {
	b.PriceCents = &cents
	return b
}

func (b *ResourceBuilder) WithoutPrice() *ResourceBuilder {
	b.PriceCents = nil
	return b
}

func (b *ResourceBuilder) BuildDomain() *catalog.Resource {
	switch b.Kind {
	case catalog.KindCourt:
		return catalog.NewCourt(b.ID, b.Name, b.Active, moneyPtr(b.RateCents))
	case catalog.KindInstructor:
		return catalog.NewInstructor(b.ID, b.Name, b.Active, moneyPtr(b.RateCents))
	case catalog.KindClassOccurrence:
		return catalog.NewClassOccurrence(b.ID, b.Name, b.Active, moneyPtr(b.PriceCents), b.StartsAt, b.EndsAt, b.Capacity)
	default:
		return catalog.NewPlan(b.ID, b.Name, b.Active, moneyPtr(b.PriceCents), b.CycleMonths)
	}
}

func moneyPtr(cents *int64) *money.Money {
	if cents == nil {
		return nil
	}
	m := money.FromCents(*cents)
	return &m
}
