package repository

import (
	"context"
	"slices"

	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LockQueries interface {
	AcquireAdvisoryLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
	LockClassOccurrence(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
}

// LockRepository serialises writers on a resource with transaction-scoped
// advisory locks. They release on commit or rollback.
type LockRepository struct {
	queries LockQueries
}

func NewLockRepository(queries LockQueries) *LockRepository {
	return &LockRepository{queries: queries}
}

func (r *LockRepository) Acquire(ctx context.Context, tx sqlc.DBTX, keys ...string) error {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, key := range sorted {
		if err := r.queries.AcquireAdvisoryLock(ctx, tx, key); err != nil {
			return infra.WrapRepoErr("failed to acquire advisory lock "+key, err)
		}
	}
	return nil
}

// LockClassOccurrence row-locks a scheduled occurrence so enrollments against
// it are counted one writer at a time.
func (r *LockRepository) LockClassOccurrence(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.LockClassOccurrence(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("class occurrence not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock class occurrence", err)
	}
	return nil
}
