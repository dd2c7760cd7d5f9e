//go:build unit

package money_test

import (
	"math/rand"
	"testing"
	"time"

	"sportshub/internal/domain/money"

	"github.com/stretchr/testify/assert"
)

func TestProRata(t *testing.T) {
	rate := money.FromCents(6000)

	tests := []struct {
		name string
		d    time.Duration
		want money.Money
	}{
		{name: "one hour", d: time.Hour, want: 6000},
		{name: "two hours", d: 2 * time.Hour, want: 12000},
		{name: "two and a half hours", d: 150 * time.Minute, want: 15000},
		{name: "twenty minutes", d: 20 * time.Minute, want: 2000},
		{name: "rounds half up", d: 61 * time.Second, want: 102}, // 101.666...
		{name: "zero", d: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rate.ProRata(tt.d, time.Hour))
		})
	}

	assert.Equal(t, money.Zero, rate.ProRata(time.Hour, 0))
}

func TestSplit(t *testing.T) {
	t.Run("100.00 into 3", func(t *testing.T) {
		parts := money.FromCents(10000).Split(3)
		assert.Equal(t, []money.Money{3334, 3333, 3333}, parts)
	})

	t.Run("exact division", func(t *testing.T) {
		assert.Equal(t, []money.Money{2500, 2500, 2500, 2500}, money.FromCents(10000).Split(4))
	})

	t.Run("fewer cents than parts", func(t *testing.T) {
		assert.Equal(t, []money.Money{2, 0, 0}, money.FromCents(2).Split(3))
	})

	t.Run("invalid count", func(t *testing.T) {
		assert.Nil(t, money.FromCents(100).Split(0))
	})

	t.Run("sum always equals total", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for range 500 {
			total := money.FromCents(r.Int63n(10_000_000))
			n := r.Intn(24) + 1

			var sum money.Money
			parts := total.Split(n)
			for _, p := range parts {
				sum = sum.Add(p)
				assert.LessOrEqual(t, p-parts[len(parts)-1], money.Money(n))
			}
			assert.Len(t, parts, n)
			assert.Equal(t, total, sum)
		}
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "120.00", money.FromCents(12000).String())
	assert.Equal(t, "99.90", money.FromCents(9990).String())
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "-1.50", money.FromCents(-150).String())
}
