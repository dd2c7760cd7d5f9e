// Package jobs holds scheduled use cases.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/subscription"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("sportshub/usecase/jobs")

const (
	OutcomeRenewed = "renewed"
	OutcomeExpired = "expired"
	OutcomeFailed  = "failed"
)

// RetryDelay is how long a subscription that failed to renew waits before it
// is claimed again.
const RetryDelay = 24 * time.Hour

type RenewalReport struct {
	Renewed int
	Expired int
	Failed  int
}

// RenewalJob bills the next cycle of auto-renewing subscriptions and expires
// the ones that will not renew. Rows are claimed with SKIP LOCKED so several
// instances may run the job at once.
type RenewalJob struct {
	uow       shared.UnitOfWork
	pricer    booking.PriceCalculator
	clock     clock.Clock
	notifier  shared.Notifier
	recorder  shared.Recorder
	batchSize int32
}

func NewRenewalJob(
	uow shared.UnitOfWork,
	pricer booking.PriceCalculator,
	clk clock.Clock,
	notifier shared.Notifier,
	recorder shared.Recorder,
	batchSize int32,
) *RenewalJob {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &RenewalJob{
		uow:       uow,
		pricer:    pricer,
		clock:     clk,
		notifier:  notifier,
		recorder:  recorder,
		batchSize: batchSize,
	}
}

// Run processes one batch.
func (j *RenewalJob) Run(ctx context.Context) (RenewalReport, error) {
	ctx, span := tracer.Start(ctx, "jobs.SubscriptionRenewal")
	defer span.End()

	var (
		report RenewalReport
		notes  []shared.Notification
	)
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		report = RenewalReport{}
		notes = nil
		now := j.clock.Now()

		due, err := tx.Subscriptions().ListDueForUpdate(ctx, tx.DB(), now, j.batchSize)
		if err != nil {
			return err
		}
		for _, sub := range due {
			n, outcome, err := j.process(ctx, tx, sub, now)
			if err != nil {
				if !isDomainErr(err) {
					return err
				}
				if err := j.deferRenewal(ctx, tx, sub, now, err); err != nil {
					return err
				}
				report.Failed++
				continue
			}
			switch outcome {
			case OutcomeRenewed:
				report.Renewed++
			case OutcomeExpired:
				report.Expired++
			}
			if n != nil {
				notes = append(notes, *n)
			}
		}
		return nil
	})
	if err != nil {
		return RenewalReport{}, err
	}

	span.SetAttributes(
		attribute.Int("renewal.renewed", report.Renewed),
		attribute.Int("renewal.expired", report.Expired),
		attribute.Int("renewal.failed", report.Failed),
	)
	j.record(OutcomeRenewed, report.Renewed)
	j.record(OutcomeExpired, report.Expired)
	j.record(OutcomeFailed, report.Failed)
	for _, n := range notes {
		j.notifier.Notify(ctx, n)
	}
	return report, nil
}

func (j *RenewalJob) process(ctx context.Context, tx shared.Tx, sub *subscription.Subscription, now time.Time) (*shared.Notification, string, error) {
	switch {
	case sub.DueForRenewal(now):
		plan, err := tx.Reads().Resource(ctx, catalog.Ref{Kind: catalog.KindPlan, ID: sub.PlanID()})
		if err != nil {
			return nil, "", shared.NotFound(err, "plan")
		}
		price, err := j.pricer.PriceFor(plan, booking.TimeSlot{})
		if err != nil {
			return nil, "", err
		}
		// the charge is built first so a rejection leaves sub untouched
		dueDate := sub.NextDueDate()
		charge, err := billing.NewCharge(
			billing.Reference{Kind: billing.RefSubscription, ID: sub.ID()},
			sub.UserID(), price, dueDate, nil, now,
		)
		if err != nil {
			return nil, "", err
		}
		if _, err := sub.Renew(now); err != nil {
			return nil, "", err
		}
		if charge != nil {
			if err := tx.Charges().Create(ctx, tx.DB(), charge); err != nil {
				return nil, "", err
			}
		}
		if err := tx.Subscriptions().Save(ctx, tx.DB(), sub); err != nil {
			return nil, "", err
		}
		return &shared.Notification{
			UserID:  sub.UserID(),
			Type:    shared.NotifySubscriptionRenewed,
			Title:   "Subscription renewed",
			Message: "A new cycle of " + plan.Name() + " is due on " + dueDate.Format(time.DateOnly) + ".",
			Link:    "/subscriptions/current",
		}, OutcomeRenewed, nil

	case sub.DueForExpiry(now):
		if err := sub.Expire(now); err != nil {
			return nil, "", err
		}
		if err := tx.Subscriptions().Save(ctx, tx.DB(), sub); err != nil {
			return nil, "", err
		}
		return &shared.Notification{
			UserID:  sub.UserID(),
			Type:    shared.NotifySubscriptionExpired,
			Title:   "Subscription expired",
			Message: "Your subscription ended on " + sub.NextDueDate().Format(time.DateOnly) + ".",
			Link:    "/subscriptions/current",
		}, OutcomeExpired, nil
	}
	return nil, "", nil
}

// deferRenewal pushes a rejected subscription back by RetryDelay so the
// rows behind it in due order are reached on the next run.
func (j *RenewalJob) deferRenewal(ctx context.Context, tx shared.Tx, sub *subscription.Subscription, now time.Time, cause error) error {
	reason := errs.Reason(cause)
	if reason == "" {
		reason = cause.Error()
	}
	retryAt := now.Add(RetryDelay)
	slog.WarnContext(ctx, "subscription renewal deferred",
		"subscription_id", sub.ID(),
		"reason", reason,
		"retry_at", retryAt,
		"error", cause)
	if err := sub.DeferRenewal(now, retryAt, reason); err != nil {
		return err
	}
	return tx.Subscriptions().Save(ctx, tx.DB(), sub)
}

func (j *RenewalJob) record(outcome string, n int) {
	for range n {
		j.recorder.SubscriptionRenewal(outcome)
	}
}

// isDomainErr reports whether err is a business rule rejection that affects
// only one subscription rather than the whole batch.
func isDomainErr(err error) bool {
	for _, kind := range []error{
		errs.ErrInvalidResource,
		errs.ErrInvalidAmount,
		errs.ErrInvalidInstallments,
		errs.ErrInvalidTransition,
		errs.ErrNotFound,
	} {
		if errs.Is(err, kind) {
			return true
		}
	}
	return false
}
