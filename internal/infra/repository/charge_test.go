//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/money"
	"sportshub/internal/infra"
	"sportshub/internal/infra/repository"
	sqlc "sportshub/internal/infra/sqlc/generated"
	repositorymock "sportshub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSubscriptionCharge(t *testing.T, installments int) *billing.Charge {
	t.Helper()
	ref := billing.Reference{Kind: billing.RefSubscription, ID: uuid.New()}
	plan := &billing.InstallmentPlan{Count: installments, IntervalMonths: 1}
	c, err := billing.NewCharge(ref, uuid.New(), money.FromCents(30000), baseTime, plan, baseTime)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestChargeRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: charge and every installment are inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockChargeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewChargeRepository(mockQueries, mockDB)

		c := newSubscriptionCharge(t, 3)

		mockQueries.EXPECT().CreateCharge(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateChargeParams) error {
				assert.Equal(t, c.ID(), arg.ID)
				assert.Equal(t, "subscription", arg.ReferenceKind)
				assert.Equal(t, int64(30000), arg.TotalCents)
				assert.Equal(t, int64(0), arg.PaidCents)
				assert.Equal(t, "pending", arg.Status)
				return nil
			})

		var numbers []int32
		var sum int64
		mockQueries.EXPECT().CreateInstallment(ctx, mockDB, gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateInstallmentParams) error {
				assert.Equal(t, c.ID(), arg.ChargeID)
				numbers = append(numbers, arg.Number)
				sum += arg.AmountCents
				return nil
			})

		require.NoError(t, repo.Create(ctx, mockDB, c))
		assert.Equal(t, []int32{1, 2, 3}, numbers)
		assert.Equal(t, int64(30000), sum)
	})

	t.Run("error: installment insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockChargeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewChargeRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateCharge(ctx, mockDB, gomock.Any()).Return(nil)
		mockQueries.EXPECT().CreateInstallment(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repo.Create(ctx, mockDB, newSubscriptionCharge(t, 2))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestChargeRepository_FindForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockChargeWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewChargeRepository(mockQueries, mockDB)

	mockQueries.EXPECT().GetChargeForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.Charge{}, pgx.ErrNoRows)

	c, err := repo.FindForUpdate(ctx, mockDB, uuid.New())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestChargeRepository_Save(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockChargeWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewChargeRepository(mockQueries, mockDB)

	c := newSubscriptionCharge(t, 2)

	mockQueries.EXPECT().UpdateCharge(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateChargeParams) error {
			assert.Equal(t, c.ID(), arg.ID)
			assert.Equal(t, "pending", arg.Status)
			return nil
		})
	mockQueries.EXPECT().UpdateInstallment(ctx, mockDB, gomock.Any()).Times(2).Return(nil)

	require.NoError(t, repo.Save(ctx, mockDB, c))
}
