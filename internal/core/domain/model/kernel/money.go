package kernel

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Money is an amount in minor currency units (cents). Menu prices, line item
// price snapshots and order totals all use it.
type Money int64

// NewMoney rejects negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", cents))
	}
	return Money(cents), nil
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

// String renders the amount with two decimals, e.g. 1250 -> "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}

// Sum adds up a list of amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}
