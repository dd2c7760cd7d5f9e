package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/user"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	outcomeApplied   = "applied"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
)

type PaymentCommands interface {
	Checkout(ctx context.Context, chargeID uuid.UUID, actor user.Actor) (*billing.Payment, error)
	ApplyPaymentEvent(ctx context.Context, in PaymentEventInput) (*PaymentEventResult, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider string
	clock    clock.Clock
	notifier shared.Notifier
	recorder shared.Recorder
}

func NewPaymentUseCase(uow shared.UnitOfWork, provider string, clk clock.Clock, notifier shared.Notifier, recorder shared.Recorder) PaymentCommands {
	if provider == "" {
		provider = billing.ProviderSimulation
	}
	return &paymentUseCaseImpl{
		uow:      uow,
		provider: provider,
		clock:    clk,
		notifier: notifier,
		recorder: recorder,
	}
}

// Checkout opens a payment against the charge's earliest unpaid installment.
// The provider reports the outcome later through ApplyPaymentEvent.
func (uc *paymentUseCaseImpl) Checkout(ctx context.Context, chargeID uuid.UUID, actor user.Actor) (*billing.Payment, error) {
	ctx, span := tracer.Start(ctx, "commands.Checkout")
	defer span.End()

	var payment *billing.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		charge, err := tx.Charges().FindForUpdate(ctx, tx.DB(), chargeID)
		if err != nil {
			return shared.NotFound(err, "charge")
		}
		if !actor.CanActFor(charge.UserID()) {
			return errs.WithReason(errs.ErrForbidden, "only the owner or an admin may pay this charge")
		}

		payment, err = billing.NewPayment(charge.ID(), charge.NextPayable(), uc.provider, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Payments().Create(ctx, tx.DB(), payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ApplyPaymentEvent records a provider event once and cascades its effect:
// payment, then installment and charge, then the billed reservation or
// subscription. Replayed events are acknowledged without effect.
func (uc *paymentUseCaseImpl) ApplyPaymentEvent(ctx context.Context, in PaymentEventInput) (*PaymentEventResult, error) {
	status := billing.PaymentStatus(in.Status)
	if !status.IsValid() {
		return nil, errs.WithReason(errs.ErrValidation, "unknown payment status "+in.Status)
	}
	if in.EventID == "" || in.ExternalPaymentID == "" {
		return nil, errs.WithReason(errs.ErrValidation, "event id and payment id are required")
	}
	provider := in.Provider
	if provider == "" {
		provider = uc.provider
	}

	ctx, span := tracer.Start(ctx, "commands.ApplyPaymentEvent")
	defer span.End()
	span.SetAttributes(
		attribute.String("payment.provider", provider),
		attribute.String("payment.status", status.String()),
	)

	var (
		result PaymentEventResult
		notes  []shared.Notification
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = PaymentEventResult{}
		notes = nil
		now := uc.clock.Now()

		fresh, err := tx.Payments().RecordWebhookEvent(ctx, tx.DB(), shared.WebhookEvent{
			Provider:          provider,
			EventID:           in.EventID,
			ExternalPaymentID: in.ExternalPaymentID,
			Status:            status.String(),
			Payload:           normalizePayload(in.Payload),
			ReceivedAt:        now,
		})
		if err != nil {
			return err
		}
		if !fresh {
			result.Duplicate = true
			return nil
		}

		payment, err := tx.Payments().FindByExternalIDForUpdate(ctx, tx.DB(), provider, in.ExternalPaymentID)
		if err != nil {
			return shared.NotFound(err, "payment")
		}
		result.PaymentID = payment.ID()
		result.ChargeID = payment.ChargeID()
		if err := payment.TransitionTo(status, now); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), payment); err != nil {
			return err
		}
		result.PaymentStatus = payment.Status().String()

		charge, err := tx.Charges().FindForUpdate(ctx, tx.DB(), payment.ChargeID())
		if err != nil {
			return shared.NotFound(err, "charge")
		}

		switch status {
		case billing.PaymentApproved:
			notes, err = uc.applyApproved(ctx, tx, charge, payment, now)
		case billing.PaymentRefused:
			notes, err = uc.applyRefused(ctx, tx, charge, payment, now)
		}
		if err != nil {
			return err
		}
		result.ChargeStatus = charge.Status().String()
		return nil
	})
	if err != nil {
		uc.recorder.WebhookProcessed(status.String(), outcomeRejected)
		return nil, err
	}

	if result.Duplicate {
		uc.recorder.WebhookProcessed(status.String(), outcomeDuplicate)
		return &result, nil
	}
	uc.recorder.WebhookProcessed(status.String(), outcomeApplied)
	for _, n := range notes {
		uc.notifier.Notify(ctx, n)
	}
	return &result, nil
}

func (uc *paymentUseCaseImpl) applyApproved(ctx context.Context, tx shared.Tx, charge *billing.Charge, payment *billing.Payment, now time.Time) ([]shared.Notification, error) {
	if _, err := charge.ApplyPayment(payment.InstallmentID(), now); err != nil {
		return nil, err
	}
	if err := tx.Charges().Save(ctx, tx.DB(), charge); err != nil {
		return nil, err
	}

	notes := []shared.Notification{{
		UserID:  charge.UserID(),
		Type:    shared.NotifyPaymentApproved,
		Title:   "Payment approved",
		Message: "We received your payment of " + payment.Amount().String() + ".",
		Link:    chargeLink(charge.ID()),
	}}
	if charge.Status() != billing.ChargePaid {
		return notes, nil
	}

	settled, err := uc.settle(ctx, tx, charge, now)
	if err != nil {
		return nil, err
	}
	if settled != nil {
		notes = append(notes, *settled)
	}
	return notes, nil
}

// settle dispatches a fully paid charge to the aggregate it bills.
func (uc *paymentUseCaseImpl) settle(ctx context.Context, tx shared.Tx, charge *billing.Charge, now time.Time) (*shared.Notification, error) {
	ref := charge.Reference()
	switch ref.Kind.Target() {
	case billing.TargetSubscription:
		sub, err := tx.Subscriptions().FindForUpdate(ctx, tx.DB(), ref.ID)
		if err != nil {
			return nil, shared.NotFound(err, "subscription")
		}
		if !sub.Status().Open() {
			slog.WarnContext(ctx, "charge paid for closed subscription",
				"subscription_id", sub.ID(), "status", sub.Status(), "charge_id", charge.ID())
			return nil, nil
		}
		if err := sub.Activate(now, map[string]any{"charge_id": charge.ID()}); err != nil {
			return nil, err
		}
		if err := tx.Subscriptions().Save(ctx, tx.DB(), sub); err != nil {
			return nil, err
		}
		return &shared.Notification{
			UserID:  sub.UserID(),
			Type:    shared.NotifySubscriptionActive,
			Title:   "Subscription active",
			Message: "Your subscription is active until " + sub.NextDueDate().Format(time.DateOnly) + ".",
			Link:    subscriptionLink,
		}, nil

	case billing.TargetReservation:
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), ref.ID)
		if err != nil {
			return nil, shared.NotFound(err, "reservation")
		}
		if res.Status() != booking.StatusPending {
			return nil, nil
		}
		if err := res.TransitionTo(booking.StatusConfirmed, now); err != nil {
			return nil, err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return nil, err
		}
		return &shared.Notification{
			UserID:  res.UserID(),
			Type:    shared.NotifyReservationStatus,
			Title:   "Reservation confirmed",
			Message: "Your reservation is confirmed.",
			Link:    reservationLink(res.ID()),
		}, nil
	}
	return nil, errs.WithReason(errs.ErrInvalidResource, "unknown charge reference "+ref.Kind.String())
}

func (uc *paymentUseCaseImpl) applyRefused(ctx context.Context, tx shared.Tx, charge *billing.Charge, payment *billing.Payment, now time.Time) ([]shared.Notification, error) {
	ref := charge.Reference()
	if ref.Kind.Recurring() {
		sub, err := tx.Subscriptions().FindForUpdate(ctx, tx.DB(), ref.ID)
		if err != nil {
			return nil, shared.NotFound(err, "subscription")
		}
		sub.PaymentFailed(now, map[string]any{
			"charge_id":  charge.ID(),
			"payment_id": payment.ID(),
		})
		if err := tx.Subscriptions().Save(ctx, tx.DB(), sub); err != nil {
			return nil, err
		}
	}
	return []shared.Notification{{
		UserID:  charge.UserID(),
		Type:    shared.NotifyPaymentRefused,
		Title:   "Payment refused",
		Message: "Your payment of " + payment.Amount().String() + " was refused.",
		Link:    chargeLink(charge.ID()),
	}}, nil
}

func chargeLink(id uuid.UUID) string {
	return "/charges/" + id.String()
}

// normalizePayload keeps the event log valid JSON: non-JSON bodies are
// stored wrapped as a string.
func normalizePayload(body []byte) []byte {
	if len(body) == 0 || json.Valid(body) {
		return body
	}
	wrapped, _ := json.Marshal(map[string]string{"raw": string(body)})
	return wrapped
}
