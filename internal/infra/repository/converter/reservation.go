package converter

import (
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/money"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// ReservationToCreateParams spreads the tagged resource over the per-kind
// foreign key columns.
func ReservationToCreateParams(res *booking.Reservation) sqlc.CreateReservationParams {
	params := sqlc.CreateReservationParams{
		ID:         res.ID(),
		Kind:       res.Kind().String(),
		UserID:     res.UserID(),
		StartAt:    pgconv.TimeToPgtype(res.Slot().Start()),
		EndAt:      pgconv.TimeToPgtype(res.Slot().End()),
		TotalCents: res.Total().Cents(),
		Status:     res.Status().String(),
		Notes:      pgconv.OptionalStringToPgtype(res.Notes()),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}

	switch res.Kind() {
	case booking.KindCourtBooking:
		params.CourtID = pgconv.UUIDToPgtype(res.ResourceID())
	case booking.KindPersonalSession:
		params.InstructorID = pgconv.UUIDToPgtype(res.ResourceID())
		params.CourtID = pgconv.UUIDPtrToPgtype(res.CourtID())
	case booking.KindClassEnrollment:
		params.ClassOccurrenceID = pgconv.UUIDToPgtype(res.ResourceID())
	}

	return params
}

func ReservationToDomain(row sqlc.GetReservationForUpdateRow) (*booking.Reservation, error) {
	kind, err := booking.ParseKind(row.Kind)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
	if err != nil {
		return nil, err
	}

	var resourceID *uuid.UUID
	var courtID *uuid.UUID
	switch kind {
	case booking.KindCourtBooking:
		resourceID = pgconv.UUIDPtrFromPgtype(row.CourtID)
	case booking.KindPersonalSession:
		resourceID = pgconv.UUIDPtrFromPgtype(row.InstructorID)
		courtID = pgconv.UUIDPtrFromPgtype(row.CourtID)
	case booking.KindClassEnrollment:
		resourceID = pgconv.UUIDPtrFromPgtype(row.ClassOccurrenceID)
	}
	if resourceID == nil {
		return nil, errs.Wrapf(errs.ErrInvalidResource, "reservation %s has no %s", row.ID, kind.ResourceKind())
	}

	return booking.ReconstructReservation(
		row.ID,
		kind,
		*resourceID,
		courtID,
		row.UserID,
		slot,
		money.FromCents(row.TotalCents),
		status,
		pgconv.StringFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
