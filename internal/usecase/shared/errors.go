package shared

import (
	"sportshub/internal/infra"
	"sportshub/internal/pkg/errs"
)

// NotFound turns a repository NOT_FOUND into the domain sentinel.
func NotFound(err error, what string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithReason(errs.ErrNotFound, what+" not found")
	}
	return err
}

// SlotTaken translates an exclusion constraint violation raised by a
// concurrent booking into SlotUnavailable.
func SlotTaken(err error) error {
	if infra.IsKind(err, infra.KindExclusionViolated) {
		return errs.WithReason(errs.ErrSlotUnavailable, "slot was taken by a concurrent reservation")
	}
	return err
}
