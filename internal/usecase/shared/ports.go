package shared

import (
	"context"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifyReservationCreated   NotificationType = "reservation_created"
	NotifyReservationCancelled NotificationType = "reservation_cancelled"
	NotifyReservationStatus    NotificationType = "reservation_status"
	NotifyEnrollmentCreated    NotificationType = "enrollment_created"
	NotifySubscriptionCreated  NotificationType = "subscription_created"
	NotifySubscriptionActive   NotificationType = "subscription_active"
	NotifySubscriptionCancel   NotificationType = "subscription_cancelled"
	NotifySubscriptionRenewed  NotificationType = "subscription_renewed"
	NotifySubscriptionExpired  NotificationType = "subscription_expired"
	NotifyPaymentApproved      NotificationType = "payment_approved"
	NotifyPaymentRefused       NotificationType = "payment_refused"
)

type Notification struct {
	UserID  uuid.UUID
	Type    NotificationType
	Title   string
	Message string
	Link    string
}

// Notifier delivers after commit. Delivery is best-effort: failures are
// logged and counted by the implementation, never returned.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Recorder receives business counters.
type Recorder interface {
	ReservationCreated(kind string)
	BookingConflict(resource string)
	ReservationCancelled(chargeCancelled bool)
	WebhookProcessed(status, outcome string)
	SubscriptionRenewal(outcome string)
}
