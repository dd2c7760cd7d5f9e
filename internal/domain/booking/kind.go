package booking

import (
	"sportshub/internal/domain/catalog"
	"sportshub/internal/pkg/errs"
)

type Kind string

const (
	KindCourtBooking    Kind = "court_booking"
	KindPersonalSession Kind = "personal_session"
	KindClassEnrollment Kind = "class_enrollment"
)

// resourceKinds maps each reservation kind to the catalog kind it books.
var resourceKinds = map[Kind]catalog.Kind{
	KindCourtBooking:    catalog.KindCourt,
	KindPersonalSession: catalog.KindInstructor,
	KindClassEnrollment: catalog.KindClassOccurrence,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := resourceKinds[k]
	return ok
}

func (k Kind) ResourceKind() catalog.Kind {
	return resourceKinds[k]
}

func ParseKind(v string) (Kind, error) {
	k := Kind(v)
	if !k.IsValid() {
		return "", errs.WithReason(errs.ErrInvalidResource, "unknown reservation kind "+v)
	}
	return k, nil
}

// KindForResource is the inverse lookup used when a caller names the
// resource type rather than the reservation kind.
func KindForResource(rk catalog.Kind) (Kind, error) {
	for k, target := range resourceKinds {
		if target == rk {
			return k, nil
		}
	}
	return "", errs.WithReason(errs.ErrInvalidResource, rk.String()+" cannot be reserved")
}
