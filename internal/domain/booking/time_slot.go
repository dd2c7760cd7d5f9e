package booking

import (
	"time"

	"sportshub/internal/pkg/errs"
)

// TimeSlot is a half-open window [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, errs.WithReason(errs.ErrInvalidWindow, "start and end are required")
	}
	if !start.Before(end) {
		return TimeSlot{}, errs.WithReason(errs.ErrInvalidWindow, "start must be before end")
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }
func (ts TimeSlot) IsZero() bool     { return ts.start.IsZero() && ts.end.IsZero() }

// In renders the window in loc; the instants are unchanged.
func (ts TimeSlot) In(loc *time.Location) TimeSlot {
	if loc == nil {
		return ts
	}
	return TimeSlot{start: ts.start.In(loc), end: ts.end.In(loc)}
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether the two windows share any instant. Touching
// windows (one ends when the other starts) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) String() string {
	const layout = "15:04"
	if ts.start.YearDay() == ts.end.YearDay() && ts.start.Year() == ts.end.Year() {
		return ts.start.Format("2006-01-02 ") + ts.start.Format(layout) + "-" + ts.end.Format(layout)
	}
	full := "2006-01-02 " + layout
	return ts.start.Format(full) + " - " + ts.end.Format(full)
}
