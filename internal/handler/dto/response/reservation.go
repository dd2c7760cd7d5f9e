package response

import (
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	ResourceID uuid.UUID  `json:"resource_id"`
	CourtID    *uuid.UUID `json:"court_id,omitempty"`
	UserID     uuid.UUID  `json:"user_id"`
	StartAt    time.Time  `json:"start_at"`
	EndAt      time.Time  `json:"end_at"`
	TotalCents int64      `json:"total_cents"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromReservation(r *booking.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		Kind:       r.Kind().String(),
		ResourceID: r.ResourceID(),
		CourtID:    r.CourtID(),
		UserID:     r.UserID(),
		StartAt:    r.Slot().Start(),
		EndAt:      r.Slot().End(),
		TotalCents: r.Total().Cents(),
		Status:     r.Status().String(),
		Notes:      r.Notes(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

type InstallmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Number      int32      `json:"number"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// ChargeSummaryResponse is the charge as returned by a write; payments are
// only listed by GET /charges/:id.
type ChargeSummaryResponse struct {
	ID            uuid.UUID             `json:"id"`
	ReferenceKind string                `json:"reference_kind"`
	ReferenceID   uuid.UUID             `json:"reference_id"`
	TotalCents    int64                 `json:"total_cents"`
	PaidCents     int64                 `json:"paid_cents"`
	Status        string                `json:"status"`
	DueDate       time.Time             `json:"due_date"`
	Installments  []InstallmentResponse `json:"installments"`
}

func FromCharge(c *billing.Charge) *ChargeSummaryResponse {
	if c == nil {
		return nil
	}
	out := &ChargeSummaryResponse{
		ID:            c.ID(),
		ReferenceKind: c.Reference().Kind.String(),
		ReferenceID:   c.Reference().ID,
		TotalCents:    c.Total().Cents(),
		PaidCents:     c.Paid().Cents(),
		Status:        c.Status().String(),
		DueDate:       c.DueDate(),
		Installments:  make([]InstallmentResponse, 0, len(c.Installments())),
	}
	for _, in := range c.Installments() {
		out.Installments = append(out.Installments, InstallmentResponse{
			ID:          in.ID(),
			Number:      int32(in.Number()),
			AmountCents: in.Amount().Cents(),
			Status:      in.Status().String(),
			DueDate:     in.DueDate(),
			PaidAt:      in.PaidAt(),
		})
	}
	return out
}

type ReservationResultResponse struct {
	Reservation *ReservationResponse   `json:"reservation"`
	Charge      *ChargeSummaryResponse `json:"charge,omitempty"`
}

func FromReservationResult(r *commands.ReservationResult) *ReservationResultResponse {
	return &ReservationResultResponse{
		Reservation: FromReservation(r.Reservation),
		Charge:      FromCharge(r.Charge),
	}
}

type CancelReservationResponse struct {
	Reservation     *ReservationResponse `json:"reservation"`
	ChargeCancelled bool                 `json:"charge_cancelled"`
}

func FromCancelReservation(r *commands.CancelReservationResult) *CancelReservationResponse {
	return &CancelReservationResponse{
		Reservation:     FromReservation(r.Reservation),
		ChargeCancelled: r.ChargeCancelled,
	}
}

type ReservationViewResponse struct {
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

type ReservationDetailResponse struct {
	Reservation *ReservationViewResponse `json:"reservation"`
	Charge      *ChargeResponse          `json:"charge,omitempty"`
}

func FromReservationDetail(d *queries.ReservationDetail) (*ReservationDetailResponse, error) {
	view, err := copyView[ReservationViewResponse](d.Reservation)
	if err != nil {
		return nil, err
	}
	out := &ReservationDetailResponse{Reservation: view}
	if d.Charge != nil {
		if out.Charge, err = FromChargeView(d.Charge); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type ReservationListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	ResourceName string    `json:"resource_name"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	Reservations []ReservationListItemResponse `json:"reservations"`
	NextCursor   string                        `json:"next_cursor,omitempty"`
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) (*ReservationListResponse, error) {
	out := &ReservationListResponse{Reservations: make([]ReservationListItemResponse, 0, len(items))}
	for _, it := range items {
		item, err := copyView[ReservationListItemResponse](it)
		if err != nil {
			return nil, err
		}
		out.Reservations = append(out.Reservations, *item)
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return out, nil
}

type AvailabilityResponse struct {
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
	PriceCents int64  `json:"price_cents"`
}

func FromAvailability(q *queries.AvailabilityQuote) *AvailabilityResponse {
	return &AvailabilityResponse{Available: q.Available, Reason: q.Reason, PriceCents: q.PriceCents}
}
