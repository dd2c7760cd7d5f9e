//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"sportshub/internal/infra"
	"sportshub/internal/infra/repository"
	repositorymock "sportshub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLockRepository_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("success: keys are taken sorted and once each", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockLockQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewLockRepository(mockQueries)

		gomock.InOrder(
			mockQueries.EXPECT().AcquireAdvisoryLock(ctx, mockDB, "court:a").Return(nil),
			mockQueries.EXPECT().AcquireAdvisoryLock(ctx, mockDB, "court:b").Return(nil),
			mockQueries.EXPECT().AcquireAdvisoryLock(ctx, mockDB, "instructor:c").Return(nil),
		)

		require.NoError(t, repo.Acquire(ctx, mockDB, "instructor:c", "court:b", "court:a", "court:b"))
	})

	t.Run("error: stops at the first failed key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockLockQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewLockRepository(mockQueries)

		mockQueries.EXPECT().AcquireAdvisoryLock(ctx, mockDB, "court:a").Return(errors.New("lock timeout"))

		err := repo.Acquire(ctx, mockDB, "court:b", "court:a")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("success: no keys is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewLockRepository(repositorymock.NewMockLockQueries(ctrl))

		require.NoError(t, repo.Acquire(ctx, &mockDBTX{}))
	})
}

func TestLockRepository_LockClassOccurrence(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: occurrence row locked"},
		{name: "error: unknown occurrence", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", returnErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockLockQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLockRepository(mockQueries)

			id := uuid.New()
			mockQueries.EXPECT().LockClassOccurrence(ctx, mockDB, id).Return(id, tc.returnErr)

			err := repo.LockClassOccurrence(ctx, mockDB, id)
			if tc.returnErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
