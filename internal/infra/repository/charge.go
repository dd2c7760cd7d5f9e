package repository

import (
	"context"

	"sportshub/internal/domain/billing"
	"sportshub/internal/infra"
	"sportshub/internal/infra/repository/converter"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ChargeWriteQueries interface {
	CreateCharge(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateChargeParams) error
	CreateInstallment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInstallmentParams) error
	GetChargeForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Charge, error)
	ListChargesByReferenceForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListChargesByReferenceForUpdateParams) ([]sqlc.Charge, error)
	ListInstallmentsByCharge(ctx context.Context, db sqlc.DBTX, chargeID uuid.UUID) ([]sqlc.Installment, error)
	UpdateCharge(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateChargeParams) error
	UpdateInstallment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInstallmentParams) error
}

type ChargeRepository struct {
	queries ChargeWriteQueries
	db      sqlc.DBTX
}

func NewChargeRepository(queries ChargeWriteQueries, db sqlc.DBTX) *ChargeRepository {
	return &ChargeRepository{
		queries: queries,
		db:      db,
	}
}

// Create persists the charge together with its installment schedule.
func (r *ChargeRepository) Create(ctx context.Context, tx sqlc.DBTX, c *billing.Charge) error {
	if err := r.queries.CreateCharge(ctx, tx, converter.ChargeToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create charge", err)
	}
	for _, inst := range c.Installments() {
		if err := r.queries.CreateInstallment(ctx, tx, converter.InstallmentToCreateParams(c, inst)); err != nil {
			return infra.WrapRepoErr("failed to create installment", err)
		}
	}
	return nil
}

func (r *ChargeRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*billing.Charge, error) {
	row, err := r.queries.GetChargeForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("charge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock charge", err)
	}
	return r.load(ctx, tx, row)
}

// ListByReferenceForUpdate locks every charge billed for ref, oldest first.
func (r *ChargeRepository) ListByReferenceForUpdate(ctx context.Context, tx sqlc.DBTX, ref billing.Reference) ([]*billing.Charge, error) {
	rows, err := r.queries.ListChargesByReferenceForUpdate(ctx, tx, sqlc.ListChargesByReferenceForUpdateParams{
		ReferenceKind: ref.Kind.String(),
		ReferenceID:   ref.ID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock charges by reference", err)
	}

	charges := make([]*billing.Charge, 0, len(rows))
	for _, row := range rows {
		c, err := r.load(ctx, tx, row)
		if err != nil {
			return nil, err
		}
		charges = append(charges, c)
	}
	return charges, nil
}

// Save writes back the charge totals and every installment's state.
func (r *ChargeRepository) Save(ctx context.Context, tx sqlc.DBTX, c *billing.Charge) error {
	err := r.queries.UpdateCharge(ctx, tx, sqlc.UpdateChargeParams{
		ID:        c.ID(),
		PaidCents: c.Paid().Cents(),
		Status:    c.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update charge", err)
	}

	for _, inst := range c.Installments() {
		err := r.queries.UpdateInstallment(ctx, tx, sqlc.UpdateInstallmentParams{
			ID:     inst.ID(),
			Status: inst.Status().String(),
			PaidAt: pgconv.TimePtrToPgtype(inst.PaidAt()),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to update installment", err)
		}
	}
	return nil
}

func (r *ChargeRepository) load(ctx context.Context, tx sqlc.DBTX, row sqlc.Charge) (*billing.Charge, error) {
	installments, err := r.queries.ListInstallmentsByCharge(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list installments", err)
	}
	c, err := converter.ChargeToDomain(row, installments)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load charge", err)
	}
	return c, nil
}
