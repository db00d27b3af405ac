// Package model defines the domain types shared across the order intake service.
package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Money is an amount in US cents. Integer cents keep order totals exact and
// permutation-invariant when summing selection prices.
type Money int64

// Cents creates a Money value from a cent amount.
func Cents(c int64) Money {
	return Money(c)
}

// Dollars creates a Money value from a dollar amount, rounded to the cent.
func Dollars(d float64) Money {
	return Money(math.Round(d * 100))
}

// PerFiveUnits scales a per-5-unit price by a quantity, rounding to the cent.
// A 2000-cent price with quantity 10 yields 4000 cents.
func (m Money) PerFiveUnits(quantity float64) Money {
	return Money(math.Round(float64(m) * quantity / 5))
}

// ToDollars returns the amount as floating-point dollars.
func (m Money) ToDollars() float64 {
	return float64(m) / 100
}

// String formats the amount as a dollar string, e.g. "$35.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as dollars with cent precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToDollars())
}

// UnmarshalJSON accepts a dollar amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d float64
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*m = Dollars(d)
	return nil
}
