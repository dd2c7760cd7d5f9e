package repository

import (
	"context"

	"sportshub/internal/domain/booking"
	"sportshub/internal/infra"
	"sportshub/internal/infra/repository/converter"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationForUpdateRow, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the reservation. A concurrent overlapping insert surfaces as
// KindExclusionViolated from the per-resource exclusion constraints.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToCreateParams(res)

	id, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) error {
	params := sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if err := r.queries.UpdateReservationStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}
