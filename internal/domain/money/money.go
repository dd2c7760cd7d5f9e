// Package money holds monetary amounts as integer cents.
package money

import (
	"fmt"
	"time"
)

type Money int64

const Zero Money = 0

func FromCents(cents int64) Money {
	return Money(cents)
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsNegative() bool { return m < 0 }

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

// ProRata returns m scaled by d/per, rounded half-up to the cent.
// Operates on whole seconds; sub-second remainders are dropped.
func (m Money) ProRata(d, per time.Duration) Money {
	secs := int64(d / time.Second)
	base := int64(per / time.Second)
	if base <= 0 {
		return Zero
	}
	return Money((int64(m)*secs*2 + base) / (base * 2))
}

// Split divides m into n parts summing exactly to m; the remainder cents
// go to the first part.
func (m Money) Split(n int) []Money {
	if n <= 0 {
		return nil
	}
	share := int64(m) / int64(n)
	rest := int64(m) - share*int64(n)

	parts := make([]Money, n)
	for i := range parts {
		parts[i] = Money(share)
	}
	parts[0] += Money(rest)
	return parts
}

// String renders the amount with two decimals, e.g. "120.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
