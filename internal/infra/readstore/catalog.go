package readstore

import (
	"context"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"
	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	GetCourt(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCourtRow, error)
	GetInstructor(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetInstructorRow, error)
	GetClassOccurrence(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetClassOccurrenceRow, error)
	GetPlan(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPlanRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// FindResource loads the catalog entry ref points at.
func (r *CatalogReadStore) FindResource(ctx context.Context, ref catalog.Ref) (*catalog.Resource, error) {
	switch ref.Kind {
	case catalog.KindCourt:
		row, err := r.queries.GetCourt(ctx, r.db, ref.ID)
		if err != nil {
			return nil, lookupErr("court", err)
		}
		return catalog.NewCourt(row.ID, row.Name, row.IsActive, moneyPtr(row.HourlyRateCents)), nil

	case catalog.KindInstructor:
		row, err := r.queries.GetInstructor(ctx, r.db, ref.ID)
		if err != nil {
			return nil, lookupErr("instructor", err)
		}
		return catalog.NewInstructor(row.ID, row.Name, row.IsActive, moneyPtr(row.HourlyRateCents)), nil

	case catalog.KindClassOccurrence:
		row, err := r.queries.GetClassOccurrence(ctx, r.db, ref.ID)
		if err != nil {
			return nil, lookupErr("class occurrence", err)
		}
		return catalog.NewClassOccurrence(
			row.ID,
			row.Name,
			row.IsActive,
			moneyPtr(row.UnitPriceCents),
			pgconv.TimeFromPgtype(row.StartsAt),
			pgconv.TimeFromPgtype(row.EndsAt),
			int(row.Capacity),
		), nil

	case catalog.KindPlan:
		row, err := r.queries.GetPlan(ctx, r.db, ref.ID)
		if err != nil {
			return nil, lookupErr("plan", err)
		}
		return catalog.NewPlan(row.ID, row.Name, row.IsActive, moneyPtr(row.PriceCents), int(row.CycleMonths)), nil
	}

	return nil, errs.WithReason(errs.ErrInvalidResource, "unknown resource type "+ref.Kind.String())
}

func lookupErr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get "+what, err)
}

func moneyPtr(cents pgtype.Int8) *money.Money {
	v := pgconv.Int64PtrFromPgtype(cents)
	if v == nil {
		return nil
	}
	m := money.FromCents(*v)
	return &m
}
