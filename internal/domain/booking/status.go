package booking

import "sportshub/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCancelled},
	StatusCancelled: nil,
	StatusCompleted: nil,
	StatusNoShow:    nil,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", errs.WithReason(errs.ErrInvalidTransition, "unknown reservation status "+v)
	}
	return s, nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Holding statuses occupy their slot for the overlap check.
func (s Status) Holding() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldingStatuses lists the statuses that block a slot, in storage form.
func HoldingStatuses() []string {
	return []string{StatusPending.String(), StatusConfirmed.String()}
}
