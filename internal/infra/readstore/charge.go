package readstore

import (
	"context"

	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChargeViewQueries interface {
	GetChargeView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Charge, error)
	GetLatestChargeByReferenceID(ctx context.Context, db sqlc.DBTX, referenceID uuid.UUID) (sqlc.Charge, error)
	ListInstallmentsByCharge(ctx context.Context, db sqlc.DBTX, chargeID uuid.UUID) ([]sqlc.Installment, error)
	ListPaymentsByCharge(ctx context.Context, db sqlc.DBTX, chargeID uuid.UUID) ([]sqlc.Payment, error)
}

type ChargeReadStore struct {
	queries ChargeViewQueries
	db      sqlc.DBTX
}

func NewChargeReadStore(queries ChargeViewQueries, db sqlc.DBTX) *ChargeReadStore {
	return &ChargeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ChargeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ChargeView, error) {
	row, err := r.queries.GetChargeView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("charge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get charge view", err)
	}
	return r.withDetails(ctx, row)
}

// FindLatestByReference returns the newest charge billed for the reservation
// or subscription with the given id. Reference ids are unique across kinds.
func (r *ChargeReadStore) FindLatestByReference(ctx context.Context, referenceID uuid.UUID) (*queries.ChargeView, error) {
	row, err := r.queries.GetLatestChargeByReferenceID(ctx, r.db, referenceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("charge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get charge by reference", err)
	}
	return r.withDetails(ctx, row)
}

func (r *ChargeReadStore) withDetails(ctx context.Context, row sqlc.Charge) (*queries.ChargeView, error) {
	installments, err := r.queries.ListInstallmentsByCharge(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list installments", err)
	}
	payments, err := r.queries.ListPaymentsByCharge(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	view := &queries.ChargeView{
		ID:            row.ID,
		ReferenceKind: row.ReferenceKind,
		ReferenceID:   row.ReferenceID,
		UserID:        row.UserID,
		TotalCents:    row.TotalCents,
		PaidCents:     row.PaidCents,
		Status:        row.Status,
		DueDate:       pgconv.TimeFromPgtype(row.DueDate),
		Installments:  make([]queries.InstallmentView, 0, len(installments)),
		Payments:      make([]queries.PaymentView, 0, len(payments)),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, inst := range installments {
		view.Installments = append(view.Installments, queries.InstallmentView{
			ID:          inst.ID,
			Number:      inst.Number,
			AmountCents: inst.AmountCents,
			Status:      inst.Status,
			DueDate:     pgconv.TimeFromPgtype(inst.DueDate),
			PaidAt:      pgconv.TimePtrFromPgtype(inst.PaidAt),
		})
	}
	for _, p := range payments {
		view.Payments = append(view.Payments, queries.PaymentView{
			ID:            p.ID,
			InstallmentID: p.InstallmentID,
			Provider:      p.Provider,
			ExternalID:    p.ExternalID,
			AmountCents:   p.AmountCents,
			Status:        p.Status,
			CreatedAt:     pgconv.TimeFromPgtype(p.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(p.UpdatedAt),
		})
	}
	return view, nil
}
