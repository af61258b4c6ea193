package output

import (
	"strconv"

	"github.com/propcalc/investment-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as AUD currency with 2 decimals and thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatWholeCurrency formats a decimal as AUD currency rounded to whole dollars.
func FormatWholeCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// amount renders money as a plain two-decimal figure for CSV.
func amount(d decimal.Decimal) string { return money.NewMoneyFromDecimal(d).String() }

// FormatPercentage formats an already-scaled percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fraction (0.3) as a percentage ("30.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// formatYear renders an optional projection year, or fallback when absent.
func formatYear(year *int, fallback string) string {
	if year == nil {
		return fallback
	}
	return strconv.Itoa(*year)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
