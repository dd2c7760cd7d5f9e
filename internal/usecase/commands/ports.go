package commands

import (
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/subscription"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sportshub/usecase/commands")

// CreateReservationInput names the resource by its catalog type. CourtID is
// only meaningful for personal sessions that also occupy a court.
type CreateReservationInput struct {
	ResourceType string
	ResourceID   uuid.UUID
	CourtID      *uuid.UUID
	Start        time.Time
	End          time.Time
	Notes        string
}

type EnrollInput struct {
	OccurrenceID uuid.UUID
	Notes        string
}

// ReservationResult carries the committed reservation and, when the
// reservation is not free, the charge billed for it.
type ReservationResult struct {
	Reservation *booking.Reservation
	Charge      *billing.Charge
}

type CancelReservationResult struct {
	Reservation     *booking.Reservation
	ChargeCancelled bool
}

type SubscribeInput struct {
	PlanID       uuid.UUID
	Installments int
	AutoRenew    bool
}

type SubscriptionResult struct {
	Subscription *subscription.Subscription
	Charge       *billing.Charge
}

type CancelSubscriptionResult struct {
	Subscription     *subscription.Subscription
	ChargesCancelled int
}

// PaymentEventInput is a status report from the payment provider.
type PaymentEventInput struct {
	Provider          string
	EventID           string
	ExternalPaymentID string
	Status            string
	Payload           []byte
}

type PaymentEventResult struct {
	Duplicate     bool
	PaymentID     uuid.UUID
	PaymentStatus string
	ChargeID      uuid.UUID
	ChargeStatus  string
}
