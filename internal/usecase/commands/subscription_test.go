//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/subscription"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/shared"
	"sportshub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("opens pending subscription with first charge due now", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		actor := student()

		out, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID(), AutoRenew: true}, actor)

		require.NoError(t, err)
		sub := out.Subscription
		assert.Equal(t, subscription.StatusPending, sub.Status())
		assert.True(t, sub.AutoRenew())
		assert.Equal(t, plan.ID(), sub.PlanID())
		require.NotNil(t, out.Charge)
		assert.Equal(t, billing.Reference{Kind: billing.RefSubscription, ID: sub.ID()}, out.Charge.Reference())
		assert.Equal(t, int64(9990), out.Charge.Total().Cents())
		assert.True(t, out.Charge.DueDate().Equal(baseNow))
		assert.Len(t, out.Charge.Installments(), 1)

		assert.Equal(t, []subscription.EventType{subscription.EventCreated}, f.uow.SubscriptionEvents(sub.ID()))
		assert.Contains(t, f.uow.Locks(), "subscriber:"+actor.ID.String())
		assert.Equal(t, []shared.NotificationType{shared.NotifySubscriptionCreated}, f.notifier.Types())
	})

	t.Run("free plan starts active without a charge", func(t *testing.T) {
		plan := builder.NewPlanBuilder().WithPrice(0).BuildDomain()
		f := newFixture(plan)
		actor := student()

		out, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID(), AutoRenew: true}, actor)

		require.NoError(t, err)
		sub := out.Subscription
		assert.Nil(t, out.Charge)
		assert.Empty(t, f.uow.ChargesFor(sub.ID()))
		assert.Equal(t, subscription.StatusActive, sub.Status())
		assert.True(t, sub.NextDueDate().Equal(baseNow.AddDate(0, plan.CycleMonths(), 0)))
		assert.Equal(t,
			[]subscription.EventType{subscription.EventCreated, subscription.EventPaymentOK},
			f.uow.SubscriptionEvents(sub.ID()))
		assert.Equal(t, subscription.StatusActive, f.uow.Subscription(sub.ID()).Status())
		assert.Equal(t, 1, f.uow.Commits)
	})

	t.Run("installments are spread a month apart", func(t *testing.T) {
		plan := builder.NewPlanBuilder().WithPrice(29970).With(func(b *builder.ResourceBuilder) { b.CycleMonths = 3 }).BuildDomain()
		f := newFixture(plan)

		out, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID(), Installments: 3}, student())

		require.NoError(t, err)
		insts := out.Charge.Installments()
		require.Len(t, insts, 3)
		for i, inst := range insts {
			assert.Equal(t, i+1, inst.Number())
			assert.Equal(t, int64(9990), inst.Amount().Cents())
			assert.True(t, inst.DueDate().Equal(baseNow.AddDate(0, i, 0)))
		}
	})

	t.Run("installments must divide the cycle", func(t *testing.T) {
		plan := builder.NewPlanBuilder().With(func(b *builder.ResourceBuilder) { b.CycleMonths = 3 }).BuildDomain()
		f := newFixture(plan)

		_, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID(), Installments: 2}, student())

		assert.True(t, errs.Is(err, errs.ErrInvalidInstallments))
		assert.Equal(t, 0, f.uow.Commits)
	})

	t.Run("price too small to split into installments", func(t *testing.T) {
		plan := builder.NewPlanBuilder().WithPrice(2).With(func(b *builder.ResourceBuilder) { b.CycleMonths = 3 }).BuildDomain()
		f := newFixture(plan)

		_, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID(), Installments: 3}, student())

		assert.True(t, errs.Is(err, errs.ErrInvalidInstallments))
		assert.Equal(t, 0, f.uow.Commits)
	})

	t.Run("second open subscription is refused", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		actor := student()
		_, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, actor)
		require.NoError(t, err)

		_, err = f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, actor)

		assert.True(t, errs.Is(err, errs.ErrSubscriptionExists))
	})

	t.Run("cancelled subscription does not block a new one", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		actor := student()
		first, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, actor)
		require.NoError(t, err)
		_, err = f.subscriptions.CancelSubscription(ctx, first.Subscription.ID(), actor)
		require.NoError(t, err)

		_, err = f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, actor)

		assert.NoError(t, err)
	})

	t.Run("unknown plan", func(t *testing.T) {
		f := newFixture()

		_, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: uuid.New()}, student())

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("inactive plan", func(t *testing.T) {
		plan := builder.NewPlanBuilder().Inactive().BuildDomain()
		f := newFixture(plan)

		_, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, student())

		assert.True(t, errs.Is(err, errs.ErrResourceInactive))
	})
}

func TestCancelSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels and voids the unpaid charge", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		actor := student()
		created, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID(), AutoRenew: true}, actor)
		require.NoError(t, err)
		f.clock.Add(24 * time.Hour)

		out, err := f.subscriptions.CancelSubscription(ctx, created.Subscription.ID(), actor)

		require.NoError(t, err)
		assert.Equal(t, 1, out.ChargesCancelled)
		sub := f.uow.Subscription(created.Subscription.ID())
		assert.Equal(t, subscription.StatusCancelled, sub.Status())
		assert.False(t, sub.AutoRenew())
		require.NotNil(t, sub.EndDate())
		assert.True(t, sub.EndDate().Equal(f.clock.Now()))
		assert.Equal(t, billing.ChargeCancelled, f.uow.Charge(created.Charge.ID()).Status())
		assert.Equal(t,
			[]subscription.EventType{subscription.EventCreated, subscription.EventCancelled},
			f.uow.SubscriptionEvents(sub.ID()))
		assert.Contains(t, f.notifier.Types(), shared.NotifySubscriptionCancel)
	})

	t.Run("paid charge survives cancellation", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		actor := student()
		created, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, actor)
		require.NoError(t, err)
		approve(t, f, created.Charge.ID(), actor, "evt-1")

		out, err := f.subscriptions.CancelSubscription(ctx, created.Subscription.ID(), actor)

		require.NoError(t, err)
		assert.Equal(t, 0, out.ChargesCancelled)
		assert.Equal(t, billing.ChargePaid, f.uow.Charge(created.Charge.ID()).Status())
	})

	t.Run("twice", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		actor := student()
		created, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, actor)
		require.NoError(t, err)
		_, err = f.subscriptions.CancelSubscription(ctx, created.Subscription.ID(), actor)
		require.NoError(t, err)

		_, err = f.subscriptions.CancelSubscription(ctx, created.Subscription.ID(), actor)

		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled))
	})

	t.Run("other user", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		created, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, student())
		require.NoError(t, err)

		_, err = f.subscriptions.CancelSubscription(ctx, created.Subscription.ID(), student())

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("admin", func(t *testing.T) {
		plan := builder.NewPlanBuilder().BuildDomain()
		f := newFixture(plan)
		created, err := f.subscriptions.Subscribe(ctx, commands.SubscribeInput{PlanID: plan.ID()}, student())
		require.NoError(t, err)

		out, err := f.subscriptions.CancelSubscription(ctx, created.Subscription.ID(), admin())

		require.NoError(t, err)
		assert.Equal(t, subscription.StatusCancelled, out.Subscription.Status())
	})

	t.Run("unknown subscription", func(t *testing.T) {
		f := newFixture()

		_, err := f.subscriptions.CancelSubscription(ctx, uuid.New(), admin())

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
