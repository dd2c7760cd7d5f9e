package response

import (
	"encoding/json"
	"time"

	"sportshub/internal/domain/subscription"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	PlanID      uuid.UUID              `json:"plan_id"`
	CycleMonths int                    `json:"cycle_months"`
	Status      string                 `json:"status"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	NextDueDate time.Time              `json:"next_due_date"`
	AutoRenew   bool                   `json:"auto_renew"`
	Charge      *ChargeSummaryResponse `json:"charge,omitempty"`
}

func FromSubscription(s *subscription.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:          s.ID(),
		UserID:      s.UserID(),
		PlanID:      s.PlanID(),
		CycleMonths: s.CycleMonths(),
		Status:      s.Status().String(),
		StartDate:   s.StartDate(),
		EndDate:     s.EndDate(),
		NextDueDate: s.NextDueDate(),
		AutoRenew:   s.AutoRenew(),
	}
}

func FromSubscriptionResult(r *commands.SubscriptionResult) *SubscriptionResponse {
	out := FromSubscription(r.Subscription)
	out.Charge = FromCharge(r.Charge)
	return out
}

type CancelSubscriptionResponse struct {
	Subscription     *SubscriptionResponse `json:"subscription"`
	ChargesCancelled int                   `json:"charges_cancelled"`
}

func FromCancelSubscription(r *commands.CancelSubscriptionResult) *CancelSubscriptionResponse {
	return &CancelSubscriptionResponse{
		Subscription:     FromSubscription(r.Subscription),
		ChargesCancelled: r.ChargesCancelled,
	}
}

type SubscriptionEventResponse struct {
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type CurrentSubscriptionResponse struct {
	ID             uuid.UUID                   `json:"id"`
	PlanID         uuid.UUID                   `json:"plan_id"`
	PlanName       string                      `json:"plan_name"`
	PlanPriceCents *int64                      `json:"plan_price_cents,omitempty"`
	CycleMonths    int32                       `json:"cycle_months"`
	Status         string                      `json:"status"`
	StartDate      time.Time                   `json:"start_date"`
	EndDate        *time.Time                  `json:"end_date,omitempty"`
	NextDueDate    time.Time                   `json:"next_due_date"`
	AutoRenew      bool                        `json:"auto_renew"`
	Events         []SubscriptionEventResponse `json:"events"`
}

func FromSubscriptionView(v *queries.SubscriptionView) (*CurrentSubscriptionResponse, error) {
	out, err := copyView[CurrentSubscriptionResponse](v)
	if err != nil {
		return nil, err
	}
	if out.Events == nil {
		out.Events = []SubscriptionEventResponse{}
	}
	return out, nil
}
