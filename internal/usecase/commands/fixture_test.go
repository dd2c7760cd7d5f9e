//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/user"
	"sportshub/internal/pkg/clock"
	"sportshub/internal/usecase/commands"
	"sportshub/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var baseNow = time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *fakeuow.UoW
	clock    *clock.MockClock
	notifier *fakeuow.Notifier
	recorder *fakeuow.Recorder

	reservations  commands.ReservationCommands
	subscriptions commands.SubscriptionCommands
	payments      commands.PaymentCommands
}

func newFixture(resources ...*catalog.Resource) *fixture {
	f := &fixture{
		uow:      fakeuow.New(resources...),
		clock:    clock.NewMockClock(baseNow),
		notifier: &fakeuow.Notifier{},
		recorder: &fakeuow.Recorder{},
	}
	pricer := booking.NewDefaultPriceCalculator()
	f.reservations = commands.NewReservationUseCase(f.uow, pricer, f.clock, time.UTC, f.notifier, f.recorder)
	f.subscriptions = commands.NewSubscriptionUseCase(f.uow, pricer, f.clock, f.notifier)
	f.payments = commands.NewPaymentUseCase(f.uow, "", f.clock, f.notifier, f.recorder)
	return f
}

func student() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleStudent}
}

func userActor(id uuid.UUID) user.Actor {
	return user.Actor{ID: id, Role: user.RoleStudent}
}

func admin() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func at(hour, minute int) time.Time {
	return time.Date(2030, 3, 2, hour, minute, 0, 0, time.UTC)
}

// pay checks out the next installment of chargeID and reports status for it.
func pay(t *testing.T, f *fixture, chargeID uuid.UUID, actor user.Actor, eventID, status string) *commands.PaymentEventResult {
	t.Helper()
	payment, err := f.payments.Checkout(context.Background(), chargeID, actor)
	require.NoError(t, err)
	out, err := f.payments.ApplyPaymentEvent(context.Background(), commands.PaymentEventInput{
		EventID:           eventID,
		ExternalPaymentID: payment.ExternalID(),
		Status:            status,
	})
	require.NoError(t, err)
	return out
}

func approve(t *testing.T, f *fixture, chargeID uuid.UUID, actor user.Actor, eventID string) *commands.PaymentEventResult {
	t.Helper()
	return pay(t, f, chargeID, actor, eventID, "approved")
}
