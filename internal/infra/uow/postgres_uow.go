package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/infra/readstore"
	"sportshub/internal/infra/repository"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("sportshub/infra/uow")

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt runs in its own function so rollback happens before the
// backoff sleep and no defers pile up across retries.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	ctx, span := tracer.Start(ctx, "uow.Within")
	defer span.End()

	for attempt := 0; attempt <= maxRetries; attempt++ {
		span.SetAttributes(attribute.Int("db.tx.attempt", attempt+1))

		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			span.SetStatus(codes.Error, "max retries exceeded")
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errs.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errs.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	chargeRepo       shared.ChargeRepository
	paymentRepo      shared.PaymentRepository
	subscriptionRepo shared.SubscriptionRepository
	lockRepo         shared.LockRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Charges() shared.ChargeRepository {
	if t.chargeRepo == nil {
		t.chargeRepo = repository.NewChargeRepository(t.uow.q, t.dbtx)
	}
	return t.chargeRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.uow.q, t.dbtx)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Locks() shared.LockRepository {
	if t.lockRepo == nil {
		t.lockRepo = repository.NewLockRepository(t.uow.q)
	}
	return t.lockRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore      *readstore.CatalogReadStore
	occupancyStore    *readstore.OccupancyReadStore
	subscriptionStore *readstore.SubscriptionReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) occupancy() *readstore.OccupancyReadStore {
	if r.occupancyStore == nil {
		r.occupancyStore = readstore.NewOccupancyReadStore(r.uow.q, r.dbtx)
	}
	return r.occupancyStore
}

func (r *commandReads) subscriptions() *readstore.SubscriptionReadStore {
	if r.subscriptionStore == nil {
		r.subscriptionStore = readstore.NewSubscriptionReadStore(r.uow.q, r.dbtx)
	}
	return r.subscriptionStore
}

func (r *commandReads) Resource(ctx context.Context, ref catalog.Ref) (*catalog.Resource, error) {
	return r.catalog().FindResource(ctx, ref)
}

func (r *commandReads) Occupancy(ctx context.Context, ref catalog.Ref, window booking.TimeSlot) ([]booking.Occupancy, error) {
	return r.occupancy().FindOverlapping(ctx, ref, window)
}

func (r *commandReads) ActiveEnrollments(ctx context.Context, occurrenceID uuid.UUID) (int, error) {
	return r.occupancy().CountActiveEnrollments(ctx, occurrenceID)
}

func (r *commandReads) HasActiveEnrollment(ctx context.Context, occurrenceID, userID uuid.UUID) (bool, error) {
	return r.occupancy().HasActiveEnrollment(ctx, occurrenceID, userID)
}

func (r *commandReads) HasOpenSubscription(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.subscriptions().HasOpen(ctx, userID)
}
