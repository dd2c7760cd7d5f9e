//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"sportshub/internal/domain/subscription"
	"sportshub/internal/pkg/errs"
	"sportshub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)

func eventTypes(evs []subscription.Event) []subscription.EventType {
	out := make([]subscription.EventType, len(evs))
	for i, e := range evs {
		out[i] = e.Type
	}
	return out
}

func activeSub(t *testing.T, autoRenew bool) *subscription.Subscription {
	t.Helper()
	plan := builder.NewPlanBuilder().BuildDomain()
	s, err := subscription.New(uuid.New(), plan, autoRenew, now)
	require.NoError(t, err)
	require.NoError(t, s.Activate(now, map[string]any{"payment_id": "p1"}))
	s.PullEvents()
	return s
}

func TestNew(t *testing.T) {
	plan := builder.NewPlanBuilder().BuildDomain()
	userID := uuid.New()

	s, err := subscription.New(userID, plan, true, now)
	require.NoError(t, err)

	assert.Equal(t, subscription.StatusPending, s.Status())
	assert.Equal(t, userID, s.UserID())
	assert.Equal(t, plan.ID(), s.PlanID())
	assert.Equal(t, now, s.NextDueDate())
	assert.Nil(t, s.EndDate())

	evs := s.PullEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, subscription.EventCreated, evs[0].Type)
	assert.JSONEq(t, `{"plan_id":"`+plan.ID().String()+`"}`, string(evs[0].Payload))
	assert.Empty(t, s.PullEvents())

	t.Run("rejects a non plan resource", func(t *testing.T) {
		_, err := subscription.New(userID, builder.NewCourtBuilder().BuildDomain(), true, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidResource))
	})

	t.Run("rejects an inactive plan", func(t *testing.T) {
		_, err := subscription.New(userID, builder.NewPlanBuilder().Inactive().BuildDomain(), true, now)
		assert.True(t, errs.Is(err, errs.ErrResourceInactive))
	})
}

func TestActivate(t *testing.T) {
	plan := builder.NewPlanBuilder().With(func(b *builder.ResourceBuilder) { b.CycleMonths = 3 }).BuildDomain()
	s, err := subscription.New(uuid.New(), plan, true, now)
	require.NoError(t, err)

	require.NoError(t, s.Activate(now.Add(time.Minute), nil))
	assert.Equal(t, subscription.StatusActive, s.Status())
	assert.Equal(t, now.AddDate(0, 3, 0), s.NextDueDate())

	require.NoError(t, s.Activate(now.Add(time.Hour), nil), "repeat payment only logs")
	assert.Equal(t, now.AddDate(0, 3, 0), s.NextDueDate())
	assert.Equal(t,
		[]subscription.EventType{subscription.EventCreated, subscription.EventPaymentOK, subscription.EventPaymentOK},
		eventTypes(s.PullEvents()))

	require.NoError(t, s.Cancel(now, uuid.New()))
	assert.True(t, errs.Is(s.Activate(now, nil), errs.ErrInvalidTransition))
}

func TestCancel(t *testing.T) {
	s := activeSub(t, true)
	actor := uuid.New()
	at := now.Add(48 * time.Hour)

	require.NoError(t, s.Cancel(at, actor))
	assert.Equal(t, subscription.StatusCancelled, s.Status())
	require.NotNil(t, s.EndDate())
	assert.Equal(t, at, *s.EndDate())
	assert.False(t, s.AutoRenew())
	assert.False(t, s.Status().Open())

	err := s.Cancel(at, actor)
	assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
	assert.Equal(t, []subscription.EventType{subscription.EventCancelled}, eventTypes(s.PullEvents()))
}

func TestRenewal(t *testing.T) {
	s := activeSub(t, true)
	firstDue := s.NextDueDate()

	assert.False(t, s.DueForRenewal(firstDue.Add(-time.Second)))
	_, err := s.Renew(firstDue.Add(-time.Second))
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

	due, err := s.Renew(firstDue)
	require.NoError(t, err)
	assert.Equal(t, firstDue, due)
	assert.Equal(t, firstDue.AddDate(0, 1, 0), s.NextDueDate())
	assert.False(t, s.DueForRenewal(firstDue), "renewal is applied once per cycle")
	assert.False(t, s.DueForExpiry(firstDue))
	assert.Equal(t, []subscription.EventType{subscription.EventRenewed}, eventTypes(s.PullEvents()))
}

func TestDeferRenewal(t *testing.T) {
	s := activeSub(t, true)
	firstDue := s.NextDueDate()

	err := s.DeferRenewal(firstDue.Add(-time.Second), firstDue.Add(time.Hour), "plan missing")
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition), "not due yet")
	assert.True(t, errs.Is(s.DeferRenewal(firstDue, firstDue, "plan missing"), errs.ErrValidation))

	retryAt := firstDue.Add(24 * time.Hour)
	require.NoError(t, s.DeferRenewal(firstDue, retryAt, "plan missing"))
	assert.Equal(t, retryAt, s.NextDueDate())
	assert.Equal(t, subscription.StatusActive, s.Status())
	assert.False(t, s.DueForRenewal(firstDue))
	assert.True(t, s.DueForRenewal(retryAt))
	assert.Equal(t, []subscription.EventType{subscription.EventRenewalFailed}, eventTypes(s.PullEvents()))
}

func TestExpire(t *testing.T) {
	s := activeSub(t, false)
	paidUntil := s.NextDueDate()

	assert.False(t, s.DueForRenewal(paidUntil))
	assert.True(t, errs.Is(s.Expire(paidUntil.Add(-time.Hour)), errs.ErrInvalidTransition))

	require.NoError(t, s.Expire(paidUntil.Add(time.Hour)))
	assert.Equal(t, subscription.StatusExpired, s.Status())
	require.NotNil(t, s.EndDate())
	assert.Equal(t, paidUntil, *s.EndDate())

	assert.True(t, errs.Is(s.Cancel(now, uuid.New()), errs.ErrInvalidTransition))
}

func TestInstallmentInterval(t *testing.T) {
	tests := []struct {
		cycle, count int
		want         int
		wantErr      bool
	}{
		{cycle: 1, count: 1, want: 1},
		{cycle: 12, count: 12, want: 1},
		{cycle: 12, count: 4, want: 3},
		{cycle: 6, count: 2, want: 3},
		{cycle: 12, count: 5, wantErr: true},
		{cycle: 3, count: 6, wantErr: true},
		{cycle: 3, count: 0, wantErr: true},
	}
	for _, tt := range tests {
		got, err := subscription.InstallmentInterval(tt.cycle, tt.count)
		if tt.wantErr {
			assert.True(t, errs.Is(err, errs.ErrInvalidInstallments), "cycle=%d count=%d", tt.cycle, tt.count)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "cycle=%d count=%d", tt.cycle, tt.count)
	}
}
