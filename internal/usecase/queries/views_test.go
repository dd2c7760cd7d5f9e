//go:build unit

package queries_test

import (
	"context"
	"testing"

	"sportshub/internal/domain/user"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/queries"
	queriesmock "sportshub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChargeQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	view := &queries.ChargeView{ID: uuid.New(), UserID: ownerID, Status: "pending"}

	tests := []struct {
		name    string
		actor   user.Actor
		repoErr error
		wantErr error
	}{
		{name: "owner", actor: user.Actor{ID: ownerID, Role: user.RoleStudent}},
		{name: "admin", actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}},
		{name: "stranger", actor: user.Actor{ID: uuid.New(), Role: user.RoleStudent}, wantErr: errs.ErrForbidden},
		{name: "missing", actor: user.Actor{ID: ownerID}, repoErr: notFound(), wantErr: errs.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockChargeViewRepo(ctrl)
			if tt.repoErr != nil {
				repo.EXPECT().FindByID(ctx, view.ID).Return(nil, tt.repoErr)
			} else {
				repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := queries.NewChargeQueries(repo).GetByID(ctx, tt.actor, view.ID)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestSubscriptionQueries_Current(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("open subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockSubscriptionViewRepo(ctrl)
		view := &queries.SubscriptionView{ID: uuid.New(), UserID: userID, Status: "active"}
		repo.EXPECT().FindOpenByUser(ctx, userID).Return(view, nil)

		got, err := queries.NewSubscriptionQueries(repo).Current(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockSubscriptionViewRepo(ctrl)
		repo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, notFound())

		_, err := queries.NewSubscriptionQueries(repo).Current(ctx, userID)

		require.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, "open subscription not found", errs.Reason(err))
	})
}

func TestNotificationQueries_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	for name, tc := range map[string]struct {
		limit int
		want  int32
	}{
		"default":  {limit: 0, want: queries.DefaultNotificationLimit},
		"explicit": {limit: 5, want: 5},
		"capped":   {limit: 1000, want: queries.MaxListLimit},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockNotificationViewRepo(ctrl)
			repo.EXPECT().ListByUser(ctx, userID, tc.want).Return([]*queries.NotificationView{}, nil)

			got, err := queries.NewNotificationQueries(repo).List(ctx, userID, tc.limit)

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}
