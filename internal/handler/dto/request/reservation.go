package request

import (
	"strings"
	"time"

	"sportshub/internal/pkg/ptr"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

// ResourceType is one of court, instructor or class_occurrence. Start and end
// are ignored for class occurrences, which carry their own window.
type CreateReservationRequest struct {
	ResourceType string     `json:"resource_type" binding:"required"`
	ResourceID   uuid.UUID  `json:"resource_id" binding:"required"`
	CourtID      *uuid.UUID `json:"court_id,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Notes        *string    `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceType: r.ResourceType,
		ResourceID:   r.ResourceID,
		CourtID:      r.CourtID,
		Start:        r.StartTime,
		End:          r.EndTime,
		Notes:        trimmed(r.Notes),
	}
}

type AvailabilityRequest struct {
	ResourceType         string     `json:"resource_type" binding:"required"`
	ResourceID           uuid.UUID  `json:"resource_id" binding:"required"`
	CourtID              *uuid.UUID `json:"court_id,omitempty"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              time.Time  `json:"end_time"`
	ExcludeReservationID *uuid.UUID `json:"exclude_reservation_id,omitempty"`
}

func (r AvailabilityRequest) ToInput() queries.AvailabilityInput {
	return queries.AvailabilityInput{
		ResourceType:         r.ResourceType,
		ResourceID:           r.ResourceID,
		CourtID:              r.CourtID,
		Start:                r.StartTime,
		End:                  r.EndTime,
		ExcludeReservationID: r.ExcludeReservationID,
	}
}

type TransitionReservationRequest struct {
	Status string `json:"status" binding:"required"`
}

// EnrollRequest body is optional.
type EnrollRequest struct {
	Notes *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r EnrollRequest) ToInput(occurrenceID uuid.UUID) commands.EnrollInput {
	return commands.EnrollInput{OccurrenceID: occurrenceID, Notes: trimmed(r.Notes)}
}

func trimmed(s *string) string {
	return strings.TrimSpace(ptr.Deref(s))
}
