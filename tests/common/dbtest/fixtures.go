//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestCourt inserts an active court. A nil rate makes the court free.
func CreateTestCourt(t *testing.T, db DBLike, name string, hourlyRateCents *int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO courts (id, name, sport, hourly_rate_cents) VALUES ($1, $2, 'tennis', $3)",
		id, name, hourlyRateCents)
	require.NoError(t, err)
	return id
}

func CreateTestInstructor(t *testing.T, db DBLike, name string, hourlyRateCents *int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO instructors (id, name, hourly_rate_cents) VALUES ($1, $2, $3)",
		id, name, hourlyRateCents)
	require.NoError(t, err)
	return id
}

// CreateTestClassOccurrence inserts a class with one scheduled occurrence and
// returns the occurrence id. A nil price marks the class as plan-included.
func CreateTestClassOccurrence(t *testing.T, db DBLike, name string, unitPriceCents *int64, capacity int, start, end time.Time) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	classID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO classes (id, name, unit_price_cents, capacity) VALUES ($1, $2, $3, $4)",
		classID, name, unitPriceCents, capacity)
	require.NoError(t, err)

	occurrenceID := uuid.New()
	_, err = db.Exec(ctx,
		"INSERT INTO class_occurrences (id, class_id, starts_at, ends_at) VALUES ($1, $2, $3, $4)",
		occurrenceID, classID, start, end)
	require.NoError(t, err)
	return occurrenceID
}

func CreateTestPlan(t *testing.T, db DBLike, name string, priceCents *int64, cycleMonths int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO plans (id, name, price_cents, cycle_months) VALUES ($1, $2, $3, $4)",
		id, name, priceCents, cycleMonths)
	require.NoError(t, err)
	return id
}

// Deactivate flips is_active off on one of the catalog tables.
func Deactivate(t *testing.T, db DBLike, table string, id uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE "+table+" SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
