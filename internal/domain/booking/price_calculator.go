package booking

import (
	"time"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/errs"
)

// MinimumBillable is the shortest duration an hourly resource is billed for.
const MinimumBillable = time.Hour

type PriceCalculator interface {
	PriceFor(res *catalog.Resource, slot TimeSlot) (money.Money, error)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// PriceFor prices a resource for slot. Hourly resources bill at least one
// hour and pro rata above it; flat resources ignore the window.
func (pc *DefaultPriceCalculator) PriceFor(res *catalog.Resource, slot TimeSlot) (money.Money, error) {
	if res == nil {
		return money.Zero, errs.WithReason(errs.ErrInvalidResource, "resource is required")
	}

	var amount money.Money
	switch res.Kind().PricingMode() {
	case catalog.PricingHourly:
		rate := res.HourlyRate()
		if rate == nil {
			return money.Zero, errs.WithReason(errs.ErrInvalidResource, res.Kind().String()+" "+res.Name()+" has no hourly rate")
		}
		billable := slot.Duration()
		if billable < MinimumBillable {
			billable = MinimumBillable
		}
		amount = rate.ProRata(billable, time.Hour)

	case catalog.PricingFlatOptional:
		if res.UnitPrice() == nil {
			return money.Zero, nil
		}
		amount = *res.UnitPrice()

	case catalog.PricingFlat:
		if res.UnitPrice() == nil {
			return money.Zero, errs.WithReason(errs.ErrInvalidResource, res.Kind().String()+" "+res.Name()+" has no price")
		}
		amount = *res.UnitPrice()

	default:
		return money.Zero, errs.WithReason(errs.ErrInvalidResource, "unknown resource type "+res.Kind().String())
	}

	if amount.IsNegative() {
		return money.Zero, errs.WithReason(errs.ErrInvalidResource, res.Kind().String()+" "+res.Name()+" has a negative price")
	}
	return amount, nil
}
