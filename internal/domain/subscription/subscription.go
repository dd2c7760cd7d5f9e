// Package subscription models a user's membership of a plan and its event log.
package subscription

import (
	"encoding/json"
	"time"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string { return string(s) }

// Open subscriptions count against the one-per-user rule.
func (s Status) Open() bool {
	return s == StatusActive || s == StatusPending
}

type EventType string

const (
	EventCreated       EventType = "created"
	EventRenewed       EventType = "renewed"
	EventCancelled     EventType = "cancelled"
	EventPaymentOK     EventType = "payment_ok"
	EventPaymentFailed EventType = "payment_failed"
	EventExpired       EventType = "expired"
	EventRenewalFailed EventType = "renewal_failed"
)

func (t EventType) String() string { return string(t) }

// Event is an append-only log entry. Payload is opaque to the domain.
type Event struct {
	Type       EventType
	OccurredAt time.Time
	Payload    json.RawMessage
}

type Subscription struct {
	id          uuid.UUID
	userID      uuid.UUID
	planID      uuid.UUID
	cycleMonths int
	status      Status
	startDate   time.Time
	endDate     *time.Time
	nextDueDate time.Time
	autoRenew   bool
	createdAt   time.Time
	updatedAt   time.Time

	// events recorded since load, flushed by the repository
	pending []Event
}

// New starts a pending subscription to plan. The first cycle is due now.
func New(userID uuid.UUID, plan *catalog.Resource, autoRenew bool, now time.Time) (*Subscription, error) {
	if plan == nil || plan.Kind() != catalog.KindPlan {
		return nil, errs.WithReason(errs.ErrInvalidResource, "subscriptions require a plan")
	}
	if err := plan.EnsureBookable(); err != nil {
		return nil, err
	}
	if plan.CycleMonths() < 1 {
		return nil, errs.WithReason(errs.ErrInvalidResource, "plan "+plan.Name()+" has no billing cycle")
	}

	s := &Subscription{
		id:          uuid.New(),
		userID:      userID,
		planID:      plan.ID(),
		cycleMonths: plan.CycleMonths(),
		status:      StatusPending,
		startDate:   now,
		nextDueDate: now,
		autoRenew:   autoRenew,
		createdAt:   now,
		updatedAt:   now,
	}
	s.record(EventCreated, now, map[string]any{"plan_id": plan.ID()})
	return s, nil
}

func Reconstruct(
	id, userID, planID uuid.UUID,
	cycleMonths int,
	status Status,
	startDate time.Time,
	endDate *time.Time,
	nextDueDate time.Time,
	autoRenew bool,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:          id,
		userID:      userID,
		planID:      planID,
		cycleMonths: cycleMonths,
		status:      status,
		startDate:   startDate,
		endDate:     endDate,
		nextDueDate: nextDueDate,
		autoRenew:   autoRenew,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Activate marks the first cycle paid. Already active subscriptions only log
// the payment.
func (s *Subscription) Activate(now time.Time, payload map[string]any) error {
	switch s.status {
	case StatusPending:
		s.status = StatusActive
		s.nextDueDate = s.startDate.AddDate(0, s.cycleMonths, 0)
	case StatusActive:
	default:
		return errs.WithReason(errs.ErrInvalidTransition, "subscription is "+s.status.String())
	}
	s.updatedAt = now
	s.record(EventPaymentOK, now, payload)
	return nil
}

func (s *Subscription) PaymentFailed(now time.Time, payload map[string]any) {
	s.record(EventPaymentFailed, now, payload)
}

func (s *Subscription) Cancel(now time.Time, actorID uuid.UUID) error {
	if s.status == StatusCancelled {
		return errs.WithReason(errs.ErrAlreadyCancelled, "subscription is already cancelled")
	}
	if !s.status.Open() {
		return errs.WithReason(errs.ErrInvalidTransition, "subscription is "+s.status.String())
	}
	end := now
	s.status = StatusCancelled
	s.endDate = &end
	s.autoRenew = false
	s.updatedAt = now
	s.record(EventCancelled, now, map[string]any{"actor_id": actorID})
	return nil
}

// DueForRenewal reports whether an auto-renewing active subscription has
// reached its next due date.
func (s *Subscription) DueForRenewal(now time.Time) bool {
	return s.status == StatusActive && s.autoRenew && !s.nextDueDate.After(now)
}

// DueForExpiry reports whether an active subscription without auto-renew has
// run past its paid period.
func (s *Subscription) DueForExpiry(now time.Time) bool {
	return s.status == StatusActive && !s.autoRenew && !s.nextDueDate.After(now)
}

// Renew opens the next cycle and returns the due date of its charge.
func (s *Subscription) Renew(now time.Time) (time.Time, error) {
	if !s.DueForRenewal(now) {
		return time.Time{}, errs.WithReason(errs.ErrInvalidTransition, "subscription is not due for renewal")
	}
	due := s.nextDueDate
	s.nextDueDate = due.AddDate(0, s.cycleMonths, 0)
	s.updatedAt = now
	s.record(EventRenewed, now, map[string]any{"cycle_due": due, "next_due": s.nextDueDate})
	return due, nil
}

// DeferRenewal moves a due subscription that could not be processed to
// retryAt so it stops holding the head of the due queue.
func (s *Subscription) DeferRenewal(now, retryAt time.Time, reason string) error {
	if s.status != StatusActive || s.nextDueDate.After(now) {
		return errs.WithReason(errs.ErrInvalidTransition, "subscription is not due")
	}
	if !retryAt.After(now) {
		return errs.WithReason(errs.ErrValidation, "retry must be in the future")
	}
	due := s.nextDueDate
	s.nextDueDate = retryAt
	s.updatedAt = now
	s.record(EventRenewalFailed, now, map[string]any{"cycle_due": due, "retry_at": retryAt, "reason": reason})
	return nil
}

func (s *Subscription) Expire(now time.Time) error {
	if !s.DueForExpiry(now) {
		return errs.WithReason(errs.ErrInvalidTransition, "subscription is not due for expiry")
	}
	end := s.nextDueDate
	s.status = StatusExpired
	s.endDate = &end
	s.updatedAt = now
	s.record(EventExpired, now, nil)
	return nil
}

func (s *Subscription) record(t EventType, at time.Time, payload map[string]any) {
	var raw json.RawMessage
	if payload != nil {
		// map[string]any of plain values always marshals
		raw, _ = json.Marshal(payload)
	}
	s.pending = append(s.pending, Event{Type: t, OccurredAt: at, Payload: raw})
}

// PullEvents returns and clears the events recorded since load.
func (s *Subscription) PullEvents() []Event {
	ev := s.pending
	s.pending = nil
	return ev
}

func (s *Subscription) ID() uuid.UUID          { return s.id }
func (s *Subscription) UserID() uuid.UUID      { return s.userID }
func (s *Subscription) PlanID() uuid.UUID      { return s.planID }
func (s *Subscription) CycleMonths() int       { return s.cycleMonths }
func (s *Subscription) Status() Status         { return s.status }
func (s *Subscription) StartDate() time.Time   { return s.startDate }
func (s *Subscription) EndDate() *time.Time    { return s.endDate }
func (s *Subscription) NextDueDate() time.Time { return s.nextDueDate }
func (s *Subscription) AutoRenew() bool        { return s.autoRenew }
func (s *Subscription) CreatedAt() time.Time   { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time   { return s.updatedAt }

// InstallmentInterval returns the months between installments when a cycle is
// split into count parts. count must divide the cycle.
func InstallmentInterval(cycleMonths, count int) (int, error) {
	if count < 1 || count > cycleMonths || cycleMonths%count != 0 {
		return 0, errs.WithReason(errs.ErrInvalidInstallments, "installments must evenly divide the plan cycle")
	}
	return cycleMonths / count, nil
}
