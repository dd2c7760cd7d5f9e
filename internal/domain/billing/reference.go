// Package billing models charges, their installments and payment attempts.
package billing

import (
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReferenceKind tags what a charge bills for.
type ReferenceKind string

const (
	RefCourtBooking    ReferenceKind = "court_booking"
	RefPersonalSession ReferenceKind = "personal_session"
	RefClassEnrollment ReferenceKind = "class_enrollment"
	RefSubscription    ReferenceKind = "subscription"
)

// Target says which aggregate a reference kind resolves to.
type Target int

const (
	TargetReservation Target = iota + 1
	TargetSubscription
)

var referenceTargets = map[ReferenceKind]Target{
	RefCourtBooking:    TargetReservation,
	RefPersonalSession: TargetReservation,
	RefClassEnrollment: TargetReservation,
	RefSubscription:    TargetSubscription,
}

func (k ReferenceKind) String() string {
	return string(k)
}

func (k ReferenceKind) IsValid() bool {
	_, ok := referenceTargets[k]
	return ok
}

func (k ReferenceKind) Target() Target {
	return referenceTargets[k]
}

// Recurring references may own several charges over time.
func (k ReferenceKind) Recurring() bool {
	return k.Target() == TargetSubscription
}

func ParseReferenceKind(v string) (ReferenceKind, error) {
	k := ReferenceKind(v)
	if !k.IsValid() {
		return "", errs.WithReason(errs.ErrInvalidResource, "unknown charge reference "+v)
	}
	return k, nil
}

type Reference struct {
	Kind ReferenceKind
	ID   uuid.UUID
}
