package request

import (
	"sportshub/internal/usecase/commands"
)

// PaymentWebhookRequest is the provider's status report for one payment.
type PaymentWebhookRequest struct {
	Provider  string `json:"provider,omitempty"`
	EventID   string `json:"event_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// ToInput keeps the raw body so the event log stores what the provider sent.
func (r PaymentWebhookRequest) ToInput(raw []byte) commands.PaymentEventInput {
	return commands.PaymentEventInput{
		Provider:          r.Provider,
		EventID:           r.EventID,
		ExternalPaymentID: r.PaymentID,
		Status:            r.Status,
		Payload:           raw,
	}
}
