//go:build unit

package billing_test

import (
	"testing"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	due = time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC)
)

func bookingRef() billing.Reference {
	return billing.Reference{Kind: billing.RefCourtBooking, ID: uuid.New()}
}

func TestNewCharge(t *testing.T) {
	t.Run("single installment by default", func(t *testing.T) {
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(12000), due, nil, now)
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, billing.ChargePending, c.Status())
		assert.Equal(t, money.FromCents(12000), c.Total())
		assert.True(t, c.Paid().IsZero())
		require.Len(t, c.Installments(), 1)
		assert.Equal(t, money.FromCents(12000), c.Installments()[0].Amount())
		assert.Equal(t, due, c.Installments()[0].DueDate())
		assert.Equal(t, billing.InstallmentPending, c.Installments()[0].Status())
	})

	t.Run("zero amount yields no charge", func(t *testing.T) {
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.Zero, due, nil, now)
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(-1), due, nil, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidAmount))
	})

	t.Run("unknown reference", func(t *testing.T) {
		ref := billing.Reference{Kind: "locker", ID: uuid.New()}
		_, err := billing.NewCharge(ref, uuid.New(), money.FromCents(100), due, nil, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidResource))
	})

	t.Run("100.00 in three installments", func(t *testing.T) {
		plan := billing.InstallmentPlan{Count: 3, IntervalMonths: 1}
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(10000), due, &plan, now)
		require.NoError(t, err)

		type row struct {
			Number int
			Amount money.Money
			Due    time.Time
		}
		var got []row
		var sum money.Money
		for _, inst := range c.Installments() {
			got = append(got, row{inst.Number(), inst.Amount(), inst.DueDate()})
			sum = sum.Add(inst.Amount())
		}
		want := []row{
			{1, 3334, due},
			{2, 3333, due.AddDate(0, 1, 0)},
			{3, 3333, due.AddDate(0, 2, 0)},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("installments mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, c.Total(), sum)
	})

	t.Run("fewer cents than installments", func(t *testing.T) {
		plan := billing.InstallmentPlan{Count: 3, IntervalMonths: 1}
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(2), due, &plan, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidInstallments))
		assert.Nil(t, c)
	})

	t.Run("one cent per installment is enough", func(t *testing.T) {
		plan := billing.InstallmentPlan{Count: 3, IntervalMonths: 1}
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(3), due, &plan, now)
		require.NoError(t, err)
		for _, inst := range c.Installments() {
			assert.Equal(t, money.FromCents(1), inst.Amount())
		}
	})

	t.Run("invalid installment plans", func(t *testing.T) {
		for _, plan := range []billing.InstallmentPlan{{Count: 0, IntervalMonths: 1}, {Count: 2, IntervalMonths: 0}} {
			_, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(100), due, &plan, now)
			assert.True(t, errs.Is(err, errs.ErrInvalidInstallments), "%+v", plan)
		}
	})
}

func TestChargeCancel(t *testing.T) {
	t.Run("pending charge cancels with its installments", func(t *testing.T) {
		plan := billing.InstallmentPlan{Count: 2, IntervalMonths: 1}
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(5000), due, &plan, now)
		require.NoError(t, err)

		assert.True(t, c.Cancel(now))
		assert.Equal(t, billing.ChargeCancelled, c.Status())
		for _, inst := range c.Installments() {
			assert.Equal(t, billing.InstallmentCancelled, inst.Status())
		}
		assert.False(t, c.Cancel(now), "second cancel is a no-op")
	})

	t.Run("partially paid charge is left alone", func(t *testing.T) {
		plan := billing.InstallmentPlan{Count: 2, IntervalMonths: 1}
		c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(5000), due, &plan, now)
		require.NoError(t, err)
		_, err = c.ApplyPayment(c.NextPayable().ID(), now)
		require.NoError(t, err)

		assert.False(t, c.Cancel(now))
		assert.Equal(t, billing.ChargePartiallyPaid, c.Status())
	})
}

func TestApplyPayment(t *testing.T) {
	plan := billing.InstallmentPlan{Count: 3, IntervalMonths: 1}
	c, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(10000), due, &plan, now)
	require.NoError(t, err)

	first := c.NextPayable()
	require.Equal(t, 1, first.Number())

	inst, err := c.ApplyPayment(first.ID(), now)
	require.NoError(t, err)
	assert.Equal(t, billing.InstallmentPaid, inst.Status())
	assert.Equal(t, now, *inst.PaidAt())
	assert.Equal(t, billing.ChargePartiallyPaid, c.Status())
	assert.Equal(t, money.FromCents(3334), c.Paid())
	assert.Equal(t, money.FromCents(6666), c.Outstanding())

	_, err = c.ApplyPayment(first.ID(), now)
	assert.True(t, errs.Is(err, errs.ErrOverpayment), "installment cannot be paid twice")

	_, err = c.ApplyPayment(uuid.New(), now)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	for c.NextPayable() != nil {
		_, err = c.ApplyPayment(c.NextPayable().ID(), now)
		require.NoError(t, err)
	}
	assert.Equal(t, billing.ChargePaid, c.Status())
	assert.Equal(t, c.Total(), c.Paid())
	assert.Nil(t, c.NextPayable())

	t.Run("cancelled charge rejects payments", func(t *testing.T) {
		cc, err := billing.NewCharge(bookingRef(), uuid.New(), money.FromCents(100), due, nil, now)
		require.NoError(t, err)
		id := cc.NextPayable().ID()
		cc.Cancel(now)
		_, err = cc.ApplyPayment(id, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("paid never exceeds total", func(t *testing.T) {
		inst := billing.ReconstructInstallment(uuid.New(), 1, money.FromCents(600), billing.InstallmentPending, due, nil)
		corrupt := billing.ReconstructCharge(uuid.New(), bookingRef(), uuid.New(), money.FromCents(500), money.Zero,
			billing.ChargePending, due, []*billing.Installment{inst}, now, now)
		_, err := corrupt.ApplyPayment(inst.ID(), now)
		assert.True(t, errs.Is(err, errs.ErrOverpayment))
		assert.True(t, corrupt.Paid().IsZero())
	})
}

func TestReferenceKinds(t *testing.T) {
	assert.Equal(t, billing.TargetReservation, billing.RefCourtBooking.Target())
	assert.Equal(t, billing.TargetReservation, billing.RefClassEnrollment.Target())
	assert.Equal(t, billing.TargetSubscription, billing.RefSubscription.Target())
	assert.True(t, billing.RefSubscription.Recurring())
	assert.False(t, billing.RefPersonalSession.Recurring())

	_, err := billing.ParseReferenceKind("locker")
	assert.True(t, errs.Is(err, errs.ErrInvalidResource))
}
