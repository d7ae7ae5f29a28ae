package shared

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact currency amount. The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromInt creates Money from a whole number of currency units
func MoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// MoneyFromFloat creates Money from a float, e.g. a value read from a seed file
func MoneyFromFloat(value float64) Money {
	return Money{amount: decimal.NewFromFloat(value)}
}

// ParseMoney parses user input such as "12.50".
// Non-numeric text is reported as InvalidInput.
func ParseMoney(field, text string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return Money{}, NewInvalidInputError(field, fmt.Sprintf("%q is not a number", text))
	}
	return Money{amount: d}, nil
}

// Zero returns zero money
func Zero() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times multiplies by a unit count (price × quantity)
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying decimal for persistence and metrics
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is lossy and only meant for metrics
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders two decimal places, matching the balance labels of the shell
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
