package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Resident individual rates for the 2024-25 income year (Stage 3 brackets)
//    - Held constant for every projection year, no bracket indexation
// 2. Medicare levy, offsets (LITO) and HELP repayments are not modelled
// 3. Only salary contributes to the base tax liability; the property result
//    is applied at the marginal rate

// TaxBracket is a marginal bracket: Rate applies to income above Threshold.
type TaxBracket struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// IncomeTaxCalculator evaluates progressive income tax against an ascending bracket table.
type IncomeTaxCalculator struct {
	Year     string
	Brackets []TaxBracket
}

// NewIncomeTaxCalculator2025 returns the 2024-25 resident bracket table.
func NewIncomeTaxCalculator2025() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Year: "2024-25",
		Brackets: []TaxBracket{
			{decimal.NewFromInt(18200), decimal.NewFromFloat(0.16)},
			{decimal.NewFromInt(45000), decimal.NewFromFloat(0.30)},
			{decimal.NewFromInt(135000), decimal.NewFromFloat(0.37)},
			{decimal.NewFromInt(190000), decimal.NewFromFloat(0.45)},
		},
	}
}

// TotalTax returns the tax payable on income. Negative income is treated as zero.
func (tc *IncomeTaxCalculator) TotalTax(income decimal.Decimal) decimal.Decimal {
	income = decimal.Max(income, decimal.Zero)

	totalTax := decimal.Zero
	for i, bracket := range tc.Brackets {
		if income.LessThanOrEqual(bracket.Threshold) {
			break
		}
		upper := income
		if i+1 < len(tc.Brackets) {
			upper = decimal.Min(income, tc.Brackets[i+1].Threshold)
		}
		totalTax = totalTax.Add(upper.Sub(bracket.Threshold).Mul(bracket.Rate))
	}
	return totalTax
}

// MarginalRate returns the rate of the highest bracket whose threshold income exceeds.
func (tc *IncomeTaxCalculator) MarginalRate(income decimal.Decimal) decimal.Decimal {
	for i := len(tc.Brackets) - 1; i >= 0; i-- {
		if income.GreaterThan(tc.Brackets[i].Threshold) {
			return tc.Brackets[i].Rate
		}
	}
	return decimal.Zero
}

// NegativeGearingRefund is the refund produced by a property loss at the
// given marginal rate, capped at the tax actually payable on salary.
// A taxable profit (or break-even) produces no refund.
func NegativeGearingRefund(taxableResult, marginalRate, baseTax decimal.Decimal) decimal.Decimal {
	if !taxableResult.IsNegative() {
		return decimal.Zero
	}
	refund := taxableResult.Abs().Mul(marginalRate)
	return decimal.Min(refund, baseTax)
}
