package commands

import (
	"context"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/subscription"
	"sportshub/internal/domain/user"
	"sportshub/internal/infra"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, in SubscribeInput, actor user.Actor) (*SubscriptionResult, error)
	CancelSubscription(ctx context.Context, id uuid.UUID, actor user.Actor) (*CancelSubscriptionResult, error)
}

type subscriptionUseCaseImpl struct {
	uow      shared.UnitOfWork
	pricer   booking.PriceCalculator
	clock    clock.Clock
	notifier shared.Notifier
}

func NewSubscriptionUseCase(uow shared.UnitOfWork, pricer booking.PriceCalculator, clk clock.Clock, notifier shared.Notifier) SubscriptionCommands {
	return &subscriptionUseCaseImpl{
		uow:      uow,
		pricer:   pricer,
		clock:    clk,
		notifier: notifier,
	}
}

// Subscribe opens a pending subscription and bills its first cycle, due now.
// The subscription turns active once that charge is paid; free plans start
// active with no charge.
func (uc *subscriptionUseCaseImpl) Subscribe(ctx context.Context, in SubscribeInput, actor user.Actor) (*SubscriptionResult, error) {
	count := in.Installments
	if count == 0 {
		count = 1
	}

	ctx, span := tracer.Start(ctx, "commands.Subscribe")
	defer span.End()

	var result SubscriptionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan, err := tx.Reads().Resource(ctx, catalog.Ref{Kind: catalog.KindPlan, ID: in.PlanID})
		if err != nil {
			return shared.NotFound(err, "plan")
		}
		interval, err := subscription.InstallmentInterval(plan.CycleMonths(), count)
		if err != nil {
			return err
		}

		if err := tx.Locks().Acquire(ctx, tx.DB(), subscriberLockKey(actor.ID)); err != nil {
			return err
		}
		open, err := tx.Reads().HasOpenSubscription(ctx, actor.ID)
		if err != nil {
			return err
		}
		if open {
			return errs.WithReason(errs.ErrSubscriptionExists, "you already have an open subscription")
		}

		now := uc.clock.Now()
		sub, err := subscription.New(actor.ID, plan, in.AutoRenew, now)
		if err != nil {
			return err
		}
		price, err := uc.pricer.PriceFor(plan, booking.TimeSlot{})
		if err != nil {
			return err
		}
		// a free plan has no charge to settle, so the first cycle starts now
		if price.IsZero() {
			if err := sub.Activate(now, map[string]any{"reason": "free_plan"}); err != nil {
				return err
			}
		}
		if err := tx.Subscriptions().Create(ctx, tx.DB(), sub); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithReason(errs.ErrSubscriptionExists, "you already have an open subscription")
			}
			return err
		}

		charge, err := createCharge(ctx, tx, chargeRequest{
			Ref:     subscriptionReference(sub.ID()),
			UserID:  actor.ID,
			Amount:  price,
			DueDate: now,
			Plan:    &billing.InstallmentPlan{Count: count, IntervalMonths: interval},
		}, now)
		if err != nil {
			return err
		}

		result = SubscriptionResult{Subscription: sub, Charge: charge}
		return nil
	})
	if err != nil {
		return nil, err
	}

	message := "Your subscription starts once the first payment is confirmed."
	if result.Charge == nil {
		message = "Your subscription is active."
	}
	uc.notifier.Notify(ctx, shared.Notification{
		UserID:  actor.ID,
		Type:    shared.NotifySubscriptionCreated,
		Title:   "Subscription created",
		Message: message,
		Link:    subscriptionLink,
	})
	return &result, nil
}

func (uc *subscriptionUseCaseImpl) CancelSubscription(ctx context.Context, id uuid.UUID, actor user.Actor) (*CancelSubscriptionResult, error) {
	ctx, span := tracer.Start(ctx, "commands.CancelSubscription")
	defer span.End()

	var result CancelSubscriptionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.NotFound(err, "subscription")
		}
		if !actor.CanActFor(sub.UserID()) {
			return errs.WithReason(errs.ErrForbidden, "only the owner or an admin may cancel this subscription")
		}

		now := uc.clock.Now()
		if err := sub.Cancel(now, actor.ID); err != nil {
			return err
		}
		if err := tx.Subscriptions().Save(ctx, tx.DB(), sub); err != nil {
			return err
		}
		cancelled, err := cancelPendingCharges(ctx, tx, subscriptionReference(sub.ID()), now)
		if err != nil {
			return err
		}

		result = CancelSubscriptionResult{Subscription: sub, ChargesCancelled: cancelled}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, shared.Notification{
		UserID:  result.Subscription.UserID(),
		Type:    shared.NotifySubscriptionCancel,
		Title:   "Subscription cancelled",
		Message: "Your subscription was cancelled on " + result.Subscription.UpdatedAt().Format(time.DateOnly) + ".",
		Link:    subscriptionLink,
	})
	return &result, nil
}

const subscriptionLink = "/subscriptions/current"

func subscriberLockKey(userID uuid.UUID) string {
	return "subscriber:" + userID.String()
}
