package repository

import (
	"context"

	"sportshub/internal/domain/billing"
	"sportshub/internal/infra"
	"sportshub/internal/infra/repository/converter"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	"sportshub/internal/usecase/shared"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	GetPaymentByExternalIDForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentByExternalIDForUpdateParams) (sqlc.Payment, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) error
	InsertWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWebhookEventParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *billing.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByExternalIDForUpdate(ctx context.Context, tx sqlc.DBTX, provider, externalID string) (*billing.Payment, error) {
	row, err := r.queries.GetPaymentByExternalIDForUpdate(ctx, tx, sqlc.GetPaymentByExternalIDForUpdateParams{
		Provider:   provider,
		ExternalID: externalID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentToDomain(row), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *billing.Payment) error {
	err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	return nil
}

// RecordWebhookEvent inserts with ON CONFLICT DO NOTHING; zero affected rows
// means the provider redelivered an event we already applied.
func (r *PaymentRepository) RecordWebhookEvent(ctx context.Context, tx sqlc.DBTX, evt shared.WebhookEvent) (bool, error) {
	payload := evt.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	n, err := r.queries.InsertWebhookEvent(ctx, tx, sqlc.InsertWebhookEventParams{
		Provider:          evt.Provider,
		ExternalEventID:   evt.EventID,
		ExternalPaymentID: evt.ExternalPaymentID,
		Status:            evt.Status,
		Payload:           payload,
		ReceivedAt:        pgconv.TimeToPgtype(evt.ReceivedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return n > 0, nil
}
