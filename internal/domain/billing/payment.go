package billing

import (
	"time"

	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

const ProviderSimulation = "simulation"

// Payment is one attempt to settle an installment through a provider.
type Payment struct {
	id            uuid.UUID
	chargeID      uuid.UUID
	installmentID uuid.UUID
	provider      string
	externalID    string
	amount        money.Money
	status        PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(chargeID uuid.UUID, inst *Installment, provider string, now time.Time) (*Payment, error) {
	if inst == nil {
		return nil, errs.WithReason(errs.ErrInvalidTransition, "charge has no payable installment")
	}
	if provider == "" {
		provider = ProviderSimulation
	}
	id := uuid.New()
	return &Payment{
		id:            id,
		chargeID:      chargeID,
		installmentID: inst.ID(),
		provider:      provider,
		externalID:    provider + "_" + id.String(),
		amount:        inst.Amount(),
		status:        PaymentPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPayment(
	id, chargeID, installmentID uuid.UUID,
	provider, externalID string,
	amount money.Money,
	status PaymentStatus,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		chargeID:      chargeID,
		installmentID: installmentID,
		provider:      provider,
		externalID:    externalID,
		amount:        amount,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payment) TransitionTo(next PaymentStatus, now time.Time) error {
	if !next.IsValid() {
		return errs.WithReason(errs.ErrValidation, "unknown payment status "+next.String())
	}
	if !p.status.CanTransitionTo(next) {
		return errs.WithReason(errs.ErrInvalidTransition,
			"cannot move payment from "+p.status.String()+" to "+next.String())
	}
	p.status = next
	p.updatedAt = now
	return nil
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ChargeID() uuid.UUID      { return p.chargeID }
func (p *Payment) InstallmentID() uuid.UUID { return p.installmentID }
func (p *Payment) Provider() string         { return p.provider }
func (p *Payment) ExternalID() string       { return p.externalID }
func (p *Payment) Amount() money.Money      { return p.amount }
func (p *Payment) Status() PaymentStatus    { return p.status }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
