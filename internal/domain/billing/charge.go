package billing

import (
	"strconv"
	"time"

	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

// InstallmentPlan splits a charge into Count parts due IntervalMonths apart.
type InstallmentPlan struct {
	Count          int
	IntervalMonths int
}

func SingleInstallment() InstallmentPlan {
	return InstallmentPlan{Count: 1, IntervalMonths: 1}
}

func (p InstallmentPlan) validate() error {
	if p.Count < 1 {
		return errs.WithReason(errs.ErrInvalidInstallments, "installment count must be at least 1")
	}
	if p.Count > 1 && p.IntervalMonths < 1 {
		return errs.WithReason(errs.ErrInvalidInstallments, "installment interval must be at least one month")
	}
	return nil
}

type Installment struct {
	id      uuid.UUID
	number  int
	amount  money.Money
	status  InstallmentStatus
	dueDate time.Time
	paidAt  *time.Time
}

func ReconstructInstallment(id uuid.UUID, number int, amount money.Money, status InstallmentStatus, dueDate time.Time, paidAt *time.Time) *Installment {
	return &Installment{id: id, number: number, amount: amount, status: status, dueDate: dueDate, paidAt: paidAt}
}

func (i *Installment) ID() uuid.UUID             { return i.id }
func (i *Installment) Number() int               { return i.number }
func (i *Installment) Amount() money.Money       { return i.amount }
func (i *Installment) Status() InstallmentStatus { return i.status }
func (i *Installment) DueDate() time.Time        { return i.dueDate }
func (i *Installment) PaidAt() *time.Time        { return i.paidAt }

// Charge is a billing obligation for exactly one reference.
// Invariant: paid never exceeds total and equals the sum of paid installments.
type Charge struct {
	id           uuid.UUID
	ref          Reference
	userID       uuid.UUID
	total        money.Money
	paid         money.Money
	status       ChargeStatus
	dueDate      time.Time
	installments []*Installment
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCharge builds a pending charge. A zero amount yields no charge (nil, nil).
func NewCharge(ref Reference, userID uuid.UUID, amount money.Money, dueDate time.Time, plan *InstallmentPlan, now time.Time) (*Charge, error) {
	if !ref.Kind.IsValid() {
		return nil, errs.WithReason(errs.ErrInvalidResource, "unknown charge reference "+ref.Kind.String())
	}
	if amount.IsNegative() {
		return nil, errs.WithReason(errs.ErrInvalidAmount, "amount "+amount.String()+" is negative")
	}
	if amount.IsZero() {
		return nil, nil
	}

	p := SingleInstallment()
	if plan != nil {
		p = *plan
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	// every installment must carry at least one cent to be payable
	if amount.Cents() < int64(p.Count) {
		return nil, errs.WithReason(errs.ErrInvalidInstallments,
			"amount "+amount.String()+" cannot be split into "+strconv.Itoa(p.Count)+" installments")
	}

	parts := amount.Split(p.Count)
	installments := make([]*Installment, len(parts))
	for i, part := range parts {
		installments[i] = &Installment{
			id:      uuid.New(),
			number:  i + 1,
			amount:  part,
			status:  InstallmentPending,
			dueDate: dueDate.AddDate(0, i*p.IntervalMonths, 0),
		}
	}

	return &Charge{
		id:           uuid.New(),
		ref:          ref,
		userID:       userID,
		total:        amount,
		paid:         money.Zero,
		status:       ChargePending,
		dueDate:      dueDate,
		installments: installments,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCharge(
	id uuid.UUID,
	ref Reference,
	userID uuid.UUID,
	total, paid money.Money,
	status ChargeStatus,
	dueDate time.Time,
	installments []*Installment,
	createdAt, updatedAt time.Time,
) *Charge {
	return &Charge{
		id:           id,
		ref:          ref,
		userID:       userID,
		total:        total,
		paid:         paid,
		status:       status,
		dueDate:      dueDate,
		installments: installments,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Cancel cancels a charge nobody has paid into yet. It reports whether the
// charge changed; partially paid, paid or already settled charges are left alone.
func (c *Charge) Cancel(now time.Time) bool {
	if c.status != ChargePending {
		return false
	}
	c.status = ChargeCancelled
	for _, inst := range c.installments {
		if inst.status == InstallmentPending {
			inst.status = InstallmentCancelled
		}
	}
	c.updatedAt = now
	return true
}

// ApplyPayment settles one installment and recomputes the charge status.
func (c *Charge) ApplyPayment(installmentID uuid.UUID, now time.Time) (*Installment, error) {
	if !c.status.Open() {
		return nil, errs.WithReason(errs.ErrInvalidTransition, "charge is "+c.status.String())
	}

	inst := c.Installment(installmentID)
	if inst == nil {
		return nil, errs.WithReason(errs.ErrNotFound, "installment not found on charge")
	}
	if inst.status != InstallmentPending {
		return nil, errs.WithReason(errs.ErrOverpayment, "installment "+strconv.Itoa(inst.number)+" is "+inst.status.String())
	}
	if c.paid.Add(inst.amount) > c.total {
		return nil, errs.WithReason(errs.ErrOverpayment, "payment exceeds the outstanding amount")
	}

	paidAt := now
	inst.status = InstallmentPaid
	inst.paidAt = &paidAt
	c.paid = c.paid.Add(inst.amount)

	c.status = ChargePartiallyPaid
	if c.allInstallmentsPaid() {
		c.status = ChargePaid
	}
	c.updatedAt = now
	return inst, nil
}

// NextPayable returns the earliest pending installment, or nil.
func (c *Charge) NextPayable() *Installment {
	if !c.status.Open() {
		return nil
	}
	var next *Installment
	for _, inst := range c.installments {
		if inst.status != InstallmentPending {
			continue
		}
		if next == nil || inst.number < next.number {
			next = inst
		}
	}
	return next
}

func (c *Charge) Installment(id uuid.UUID) *Installment {
	for _, inst := range c.installments {
		if inst.id == id {
			return inst
		}
	}
	return nil
}

func (c *Charge) allInstallmentsPaid() bool {
	for _, inst := range c.installments {
		if inst.status != InstallmentPaid {
			return false
		}
	}
	return len(c.installments) > 0
}

func (c *Charge) Outstanding() money.Money {
	return c.total.Sub(c.paid)
}

func (c *Charge) ID() uuid.UUID                { return c.id }
func (c *Charge) Reference() Reference         { return c.ref }
func (c *Charge) UserID() uuid.UUID            { return c.userID }
func (c *Charge) Total() money.Money           { return c.total }
func (c *Charge) Paid() money.Money            { return c.paid }
func (c *Charge) Status() ChargeStatus         { return c.status }
func (c *Charge) DueDate() time.Time           { return c.dueDate }
func (c *Charge) Installments() []*Installment { return c.installments }
func (c *Charge) CreatedAt() time.Time         { return c.createdAt }
func (c *Charge) UpdatedAt() time.Time         { return c.updatedAt }
