package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReservationView is the read-optimised reservation with resource names resolved.
type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	Kind         string     `json:"kind"`
	UserID       uuid.UUID  `json:"user_id"`
	ResourceID   uuid.UUID  `json:"resource_id"`
	ResourceName string     `json:"resource_name"`
	CourtID      *uuid.UUID `json:"court_id,omitempty"`
	CourtName    *string    `json:"court_name,omitempty"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        time.Time  `json:"end_at"`
	TotalCents   int64      `json:"total_cents"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	ResourceName string    `json:"resource_name"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReservationDetail pairs a reservation with its charge; Charge is nil for
// free reservations.
type ReservationDetail struct {
	Reservation *ReservationView `json:"reservation"`
	Charge      *ChargeView      `json:"charge,omitempty"`
}

type InstallmentView struct {
	ID          uuid.UUID  `json:"id"`
	Number      int32      `json:"number"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	InstallmentID uuid.UUID `json:"installment_id"`
	Provider      string    `json:"provider"`
	ExternalID    string    `json:"external_id"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChargeView struct {
	ID            uuid.UUID         `json:"id"`
	ReferenceKind string            `json:"reference_kind"`
	ReferenceID   uuid.UUID         `json:"reference_id"`
	UserID        uuid.UUID         `json:"user_id"`
	TotalCents    int64             `json:"total_cents"`
	PaidCents     int64             `json:"paid_cents"`
	Status        string            `json:"status"`
	DueDate       time.Time         `json:"due_date"`
	Installments  []InstallmentView `json:"installments"`
	Payments      []PaymentView     `json:"payments"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type SubscriptionEventView struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type SubscriptionView struct {
	ID             uuid.UUID               `json:"id"`
	UserID         uuid.UUID               `json:"user_id"`
	PlanID         uuid.UUID               `json:"plan_id"`
	PlanName       string                  `json:"plan_name"`
	PlanPriceCents *int64                  `json:"plan_price_cents,omitempty"`
	CycleMonths    int32                   `json:"cycle_months"`
	Status         string                  `json:"status"`
	StartDate      time.Time               `json:"start_date"`
	EndDate        *time.Time              `json:"end_date,omitempty"`
	NextDueDate    time.Time               `json:"next_due_date"`
	AutoRenew      bool                    `json:"auto_renew"`
	Events         []SubscriptionEventView `json:"events"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Link      *string    `json:"link,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// AvailabilityQuote answers an availability check and prices the window.
type AvailabilityQuote struct {
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
	PriceCents int64  `json:"price_cents"`
}
