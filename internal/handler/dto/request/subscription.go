package request

import (
	"sportshub/internal/usecase/commands"

	"github.com/google/uuid"
)

// Installments defaults to one; AutoRenew defaults to true.
type SubscribeRequest struct {
	PlanID       uuid.UUID `json:"plan_id" binding:"required"`
	Installments *int      `json:"installments,omitempty" binding:"omitempty,min=1"`
	AutoRenew    *bool     `json:"auto_renew,omitempty"`
}

func (r SubscribeRequest) ToInput() commands.SubscribeInput {
	in := commands.SubscribeInput{PlanID: r.PlanID, Installments: 1, AutoRenew: true}
	if r.Installments != nil {
		in.Installments = *r.Installments
	}
	if r.AutoRenew != nil {
		in.AutoRenew = *r.AutoRenew
	}
	return in
}
