package readstore

import (
	"context"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OccupancyReadQueries interface {
	ListCourtOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCourtOccupancyParams) ([]sqlc.ListCourtOccupancyRow, error)
	ListInstructorOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInstructorOccupancyParams) ([]sqlc.ListInstructorOccupancyRow, error)
	CountActiveEnrollments(ctx context.Context, db sqlc.DBTX, classOccurrenceID pgtype.UUID) (int64, error)
	HasActiveEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveEnrollmentParams) (bool, error)
}

// OccupancyReadStore lists what already holds a resource's time.
type OccupancyReadStore struct {
	queries OccupancyReadQueries
	db      sqlc.DBTX
}

func NewOccupancyReadStore(queries OccupancyReadQueries, db sqlc.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
	}
}

// FindOverlapping returns holding reservations on ref that overlap window.
// Class occurrences have no window of their own and never overlap.
func (r *OccupancyReadStore) FindOverlapping(ctx context.Context, ref catalog.Ref, window booking.TimeSlot) ([]booking.Occupancy, error) {
	start := pgconv.TimeToPgtype(window.Start())
	end := pgconv.TimeToPgtype(window.End())

	switch ref.Kind {
	case catalog.KindCourt:
		rows, err := r.queries.ListCourtOccupancy(ctx, r.db, sqlc.ListCourtOccupancyParams{
			CourtID:     ref.ID,
			WindowStart: start,
			WindowEnd:   end,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list court occupancy", err)
		}
		out := make([]booking.Occupancy, 0, len(rows))
		for _, row := range rows {
			out = appendOccupancy(out, ref, row.ID, row.StartAt, row.EndAt, row.Status)
		}
		return out, nil

	case catalog.KindInstructor:
		rows, err := r.queries.ListInstructorOccupancy(ctx, r.db, sqlc.ListInstructorOccupancyParams{
			InstructorID: ref.ID,
			WindowStart:  start,
			WindowEnd:    end,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list instructor occupancy", err)
		}
		out := make([]booking.Occupancy, 0, len(rows))
		for _, row := range rows {
			out = appendOccupancy(out, ref, row.ID, row.StartAt, row.EndAt, row.Status)
		}
		return out, nil
	}

	return nil, nil
}

func (r *OccupancyReadStore) CountActiveEnrollments(ctx context.Context, occurrenceID uuid.UUID) (int, error) {
	n, err := r.queries.CountActiveEnrollments(ctx, r.db, pgconv.UUIDToPgtype(occurrenceID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count enrollments", err)
	}
	return int(n), nil
}

func (r *OccupancyReadStore) HasActiveEnrollment(ctx context.Context, occurrenceID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasActiveEnrollment(ctx, r.db, sqlc.HasActiveEnrollmentParams{
		ClassOccurrenceID: pgconv.UUIDToPgtype(occurrenceID),
		UserID:            userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check enrollment", err)
	}
	return ok, nil
}

// Rows with an unparseable window or status are skipped; the exclusion
// constraint still guards them at insert time.
func appendOccupancy(out []booking.Occupancy, ref catalog.Ref, id uuid.UUID, startAt, endAt pgtype.Timestamptz, status string) []booking.Occupancy {
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt))
	if err != nil {
		return out
	}
	st, err := booking.ParseStatus(status)
	if err != nil {
		return out
	}
	return append(out, booking.Occupancy{
		ReservationID: id,
		Resource:      ref,
		Slot:          slot,
		Status:        st,
	})
}
