package readstore

import (
	"context"
	"time"

	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserFirstPageParams) ([]sqlc.ListReservationsByUserFirstPageRow, error)
	ListReservationsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserKeysetParams) ([]sqlc.ListReservationsByUserKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}

	view := &queries.ReservationView{
		ID:           row.ID,
		Kind:         row.Kind,
		UserID:       row.UserID,
		ResourceName: row.ResourceName,
		CourtName:    pgconv.StringPtrFromPgtype(row.CourtName),
		StartAt:      pgconv.TimeFromPgtype(row.StartAt),
		EndAt:        pgconv.TimeFromPgtype(row.EndAt),
		TotalCents:   row.TotalCents,
		Status:       row.Status,
		Notes:        pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	switch {
	case row.ClassOccurrenceID.Valid:
		view.ResourceID = row.ClassOccurrenceID.Bytes
	case row.InstructorID.Valid:
		view.ResourceID = row.InstructorID.Bytes
		view.CourtID = pgconv.UUIDPtrFromPgtype(row.CourtID)
	case row.CourtID.Valid:
		view.ResourceID = row.CourtID.Bytes
	}

	return view, nil
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserFirstPage(ctx, r.db, sqlc.ListReservationsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations first page by user", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ReservationListItem{
			ID:           row.ID,
			Kind:         row.Kind,
			ResourceName: row.ResourceName,
			StartAt:      pgconv.TimeFromPgtype(row.StartAt),
			EndAt:        pgconv.TimeFromPgtype(row.EndAt),
			TotalCents:   row.TotalCents,
			Status:       row.Status,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserKeyset(ctx, r.db, sqlc.ListReservationsByUserKeysetParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		PageLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations keyset by user", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ReservationListItem{
			ID:           row.ID,
			Kind:         row.Kind,
			ResourceName: row.ResourceName,
			StartAt:      pgconv.TimeFromPgtype(row.StartAt),
			EndAt:        pgconv.TimeFromPgtype(row.EndAt),
			TotalCents:   row.TotalCents,
			Status:       row.Status,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}
