package shared

import (
	"context"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/subscription"
	sqlc "sportshub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Charges() ChargeRepository
	Payments() PaymentRepository
	Subscriptions() SubscriptionRepository
	Locks() LockRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups commands validate against. Inside a
// transaction they see the transaction's snapshot.
type CommandReads interface {
	Resource(ctx context.Context, ref catalog.Ref) (*catalog.Resource, error)
	Occupancy(ctx context.Context, ref catalog.Ref, window booking.TimeSlot) ([]booking.Occupancy, error)
	ActiveEnrollments(ctx context.Context, occurrenceID uuid.UUID) (int, error)
	HasActiveEnrollment(ctx context.Context, occurrenceID, userID uuid.UUID) (bool, error)
	HasOpenSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) error
}

type ChargeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, charge *billing.Charge) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*billing.Charge, error)
	ListByReferenceForUpdate(ctx context.Context, tx sqlc.DBTX, ref billing.Reference) ([]*billing.Charge, error)
	Save(ctx context.Context, tx sqlc.DBTX, charge *billing.Charge) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *billing.Payment) error
	FindByExternalIDForUpdate(ctx context.Context, tx sqlc.DBTX, provider, externalID string) (*billing.Payment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *billing.Payment) error
	// RecordWebhookEvent reports false when the event was already recorded.
	RecordWebhookEvent(ctx context.Context, tx sqlc.DBTX, evt WebhookEvent) (bool, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*subscription.Subscription, error)
	Save(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) error
	ListDueForUpdate(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*subscription.Subscription, error)
}

type LockRepository interface {
	// Acquire takes transaction-scoped advisory locks in sorted key order.
	Acquire(ctx context.Context, tx sqlc.DBTX, keys ...string) error
	LockClassOccurrence(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type WebhookEvent struct {
	Provider          string
	EventID           string
	ExternalPaymentID string
	Status            string
	Payload           []byte
	ReceivedAt        time.Time
}
