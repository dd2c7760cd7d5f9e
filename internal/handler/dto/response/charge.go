package response

import (
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	InstallmentID uuid.UUID `json:"installment_id"`
	Provider      string    `json:"provider"`
	ExternalID    string    `json:"external_id"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChargeResponse struct {
	ID            uuid.UUID             `json:"id"`
	ReferenceKind string                `json:"reference_kind"`
	ReferenceID   uuid.UUID             `json:"reference_id"`
	UserID        uuid.UUID             `json:"user_id"`
	TotalCents    int64                 `json:"total_cents"`
	PaidCents     int64                 `json:"paid_cents"`
	Status        string                `json:"status"`
	DueDate       time.Time             `json:"due_date"`
	Installments  []InstallmentResponse `json:"installments"`
	Payments      []PaymentResponse     `json:"payments"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromChargeView(v *queries.ChargeView) (*ChargeResponse, error) {
	out, err := copyView[ChargeResponse](v)
	if err != nil {
		return nil, err
	}
	if out.Installments == nil {
		out.Installments = []InstallmentResponse{}
	}
	if out.Payments == nil {
		out.Payments = []PaymentResponse{}
	}
	return out, nil
}

type CheckoutResponse struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	ChargeID      uuid.UUID `json:"charge_id"`
	InstallmentID uuid.UUID `json:"installment_id"`
	Provider      string    `json:"provider"`
	ExternalID    string    `json:"external_id"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
}

func FromPayment(p *billing.Payment) *CheckoutResponse {
	return &CheckoutResponse{
		PaymentID:     p.ID(),
		ChargeID:      p.ChargeID(),
		InstallmentID: p.InstallmentID(),
		Provider:      p.Provider(),
		ExternalID:    p.ExternalID(),
		AmountCents:   p.Amount().Cents(),
		Status:        p.Status().String(),
	}
}

type PaymentEventResponse struct {
	Duplicate     bool      `json:"duplicate"`
	PaymentID     uuid.UUID `json:"payment_id,omitempty"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	ChargeID      uuid.UUID `json:"charge_id,omitempty"`
	ChargeStatus  string    `json:"charge_status,omitempty"`
}

func FromPaymentEvent(r *commands.PaymentEventResult) (*PaymentEventResponse, error) {
	return copyView[PaymentEventResponse](r)
}
