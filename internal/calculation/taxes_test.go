package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestTotalTax tests progressive income tax using the 2024-25 brackets
func TestTotalTax(t *testing.T) {
	calculator := NewIncomeTaxCalculator2025()

	tests := []struct {
		name        string
		income      decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{"Negative income clamps to zero", decimal.NewFromInt(-5000), decimal.Zero},
		{"Zero income", decimal.Zero, decimal.Zero},
		{"At tax-free threshold", decimal.NewFromInt(18200), decimal.Zero},
		{"Inside 16% bracket", decimal.NewFromInt(30000), decimal.NewFromInt(1888)},   // 11800 * 0.16
		{"Top of 16% bracket", decimal.NewFromInt(45000), decimal.NewFromInt(4288)},   // 26800 * 0.16
		{"Inside 30% bracket", decimal.NewFromInt(120000), decimal.NewFromInt(26788)}, // 4288 + 75000 * 0.30
		{"Top of 30% bracket", decimal.NewFromInt(135000), decimal.NewFromInt(31288)}, // 4288 + 27000
		{"Top of 37% bracket", decimal.NewFromInt(190000), decimal.NewFromInt(51638)}, // 31288 + 55000 * 0.37
		{"Inside 45% bracket", decimal.NewFromInt(200000), decimal.NewFromInt(56138)}, // 51638 + 10000 * 0.45
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := calculator.TotalTax(tt.income)
			assert.True(t, tax.Equal(tt.expectedTax), "expected %s, got %s", tt.expectedTax, tax)
		})
	}
}

func TestMarginalRate(t *testing.T) {
	calculator := NewIncomeTaxCalculator2025()

	tests := []struct {
		income int64
		rate   float64
	}{
		{-1, 0},
		{0, 0},
		{18200, 0},
		{18201, 0.16},
		{45000, 0.16},
		{45001, 0.30},
		{120000, 0.30},
		{135000, 0.30},
		{135001, 0.37},
		{190000, 0.37},
		{190001, 0.45},
		{1000000, 0.45},
	}

	for _, tt := range tests {
		rate := calculator.MarginalRate(decimal.NewFromInt(tt.income))
		assert.Equal(t, tt.rate, rate.InexactFloat64(), "income %d", tt.income)
	}
}

// The marginal rate must be the slope of TotalTax just below each income.
func TestMarginalRateIsSlopeOfTotalTax(t *testing.T) {
	calculator := NewIncomeTaxCalculator2025()
	one := decimal.NewFromInt(1)

	for income := int64(1000); income <= 300000; income += 7919 {
		x := decimal.NewFromInt(income)
		slope := calculator.TotalTax(x).Sub(calculator.TotalTax(x.Sub(one)))
		rate := calculator.MarginalRate(x.Sub(one))
		// a one dollar step straddling a threshold mixes two rates
		if calculator.MarginalRate(x).Equal(rate) {
			assert.True(t, slope.Equal(rate), "income %d: slope %s, marginal %s", income, slope, rate)
		}
	}
}

func TestTotalTaxContinuousAndNonDecreasing(t *testing.T) {
	calculator := NewIncomeTaxCalculator2025()
	epsilon := decimal.NewFromFloat(0.01)

	prev := calculator.TotalTax(decimal.Zero)
	for income := int64(0); income <= 250000; income += 250 {
		tax := calculator.TotalTax(decimal.NewFromInt(income))
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax decreased at %d", income)
		prev = tax
	}

	for _, b := range calculator.Brackets {
		below := calculator.TotalTax(b.Threshold.Sub(epsilon))
		above := calculator.TotalTax(b.Threshold.Add(epsilon))
		assert.True(t, above.Sub(below).LessThan(decimal.NewFromInt(1)), "discontinuity at %s", b.Threshold)
	}
}

func TestNegativeGearingRefund(t *testing.T) {
	baseTax := decimal.NewFromInt(1888)
	rate := decimal.NewFromFloat(0.16)

	tests := []struct {
		name     string
		taxable  decimal.Decimal
		expected decimal.Decimal
	}{
		{"Profit produces no refund", decimal.NewFromInt(5000), decimal.Zero},
		{"Break-even produces no refund", decimal.Zero, decimal.Zero},
		{"Loss refunded at marginal rate", decimal.NewFromInt(-10000), decimal.NewFromInt(1600)},
		{"Refund capped at base tax", decimal.NewFromInt(-50000), baseTax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NegativeGearingRefund(tt.taxable, rate, baseTax)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}
