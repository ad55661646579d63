package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// The float must be finite; callers holding NaN or Inf keep the float path.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Neg returns the amount with its sign flipped
func (m Money) Neg() Money {
	return Money{m.Decimal.Neg()}
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Float64 returns the amount rounded to cents as a float64, for renderers
// that only accept binary floats. Exact for cent amounts below 2^53/100.
func (m Money) Float64() float64 {
	return m.Round().Decimal.InexactFloat64()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the locale-neutral representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
