//go:build unit

package repository_test

import (
	"context"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var baseTime = time.Date(2030, 5, 6, 9, 0, 0, 0, time.UTC)

// mockDBTX satisfies sqlc.DBTX; every statement goes through the sqlc mock.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func courtReservation() *booking.Reservation {
	slot, _ := booking.NewTimeSlot(baseTime, baseTime.Add(time.Hour))
	return booking.ReconstructReservation(
		uuid.New(), booking.KindCourtBooking, uuid.New(), nil, uuid.New(),
		slot, money.FromCents(6000), booking.StatusPending, "bring balls", baseTime.Add(-time.Hour), baseTime.Add(-time.Hour),
	)
}
