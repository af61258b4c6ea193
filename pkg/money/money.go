package money

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	decimalTwelve     = decimal.NewFromInt(12)
	decimalFiftyTwo   = decimal.NewFromInt(52)
	decimalOneHundred = decimal.NewFromInt(100)
)

// Money represents an Australian dollar amount with decimal precision
type Money struct {
	decimal.Decimal
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

// Round rounds the amount to cents, halves away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimalTwelve)}
}

// Weekly converts an annual amount to a 52 week figure
func (m Money) Weekly() Money {
	return Money{m.Decimal.Div(decimalFiftyTwo)}
}

// String returns the plain amount with two decimals, suitable for CSV.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as currency with thousands separators,
// e.g. "$1,234.50" or "-$980.00".
func (m Money) Format() string {
	sign, d := splitSign(m.Decimal.Round(2))
	whole := d.Truncate(0)
	cents := d.Sub(whole).Mul(decimalOneHundred).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// FormatWhole renders the amount rounded to whole dollars, e.g. "$31,275".
func (m Money) FormatWhole() string {
	sign, d := splitSign(m.Decimal.Round(0))
	return sign + "$" + humanize.Comma(d.IntPart())
}

func splitSign(d decimal.Decimal) (string, decimal.Decimal) {
	if d.IsNegative() {
		return "-", d.Neg()
	}
	return "", d
}
