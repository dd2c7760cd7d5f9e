package converter

import (
	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/money"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
)

func ChargeToCreateParams(c *billing.Charge) sqlc.CreateChargeParams {
	return sqlc.CreateChargeParams{
		ID:            c.ID(),
		ReferenceKind: c.Reference().Kind.String(),
		ReferenceID:   c.Reference().ID,
		UserID:        c.UserID(),
		TotalCents:    c.Total().Cents(),
		PaidCents:     c.Paid().Cents(),
		Status:        c.Status().String(),
		DueDate:       pgconv.TimeToPgtype(c.DueDate()),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func InstallmentToCreateParams(c *billing.Charge, inst *billing.Installment) sqlc.CreateInstallmentParams {
	return sqlc.CreateInstallmentParams{
		ID:          inst.ID(),
		ChargeID:    c.ID(),
		Number:      int32(inst.Number()), // #nosec G115 -- installment counts are small
		AmountCents: inst.Amount().Cents(),
		Status:      inst.Status().String(),
		DueDate:     pgconv.TimeToPgtype(inst.DueDate()),
		PaidAt:      pgconv.TimePtrToPgtype(inst.PaidAt()),
	}
}

func ChargeToDomain(row sqlc.Charge, rows []sqlc.Installment) (*billing.Charge, error) {
	kind, err := billing.ParseReferenceKind(row.ReferenceKind)
	if err != nil {
		return nil, err
	}

	installments := make([]*billing.Installment, 0, len(rows))
	for _, r := range rows {
		installments = append(installments, billing.ReconstructInstallment(
			r.ID,
			int(r.Number),
			money.FromCents(r.AmountCents),
			billing.InstallmentStatus(r.Status),
			pgconv.TimeFromPgtype(r.DueDate),
			pgconv.TimePtrFromPgtype(r.PaidAt),
		))
	}

	return billing.ReconstructCharge(
		row.ID,
		billing.Reference{Kind: kind, ID: row.ReferenceID},
		row.UserID,
		money.FromCents(row.TotalCents),
		money.FromCents(row.PaidCents),
		billing.ChargeStatus(row.Status),
		pgconv.TimeFromPgtype(row.DueDate),
		installments,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PaymentToCreateParams(p *billing.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		ChargeID:      p.ChargeID(),
		InstallmentID: p.InstallmentID(),
		Provider:      p.Provider(),
		ExternalID:    p.ExternalID(),
		AmountCents:   p.Amount().Cents(),
		Status:        p.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentToDomain(row sqlc.Payment) *billing.Payment {
	return billing.ReconstructPayment(
		row.ID,
		row.ChargeID,
		row.InstallmentID,
		row.Provider,
		row.ExternalID,
		money.FromCents(row.AmountCents),
		billing.PaymentStatus(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
