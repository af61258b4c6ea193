package calculation

import (
	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	newBuildDepreciationRate = decimal.NewFromFloat(0.022)
	recentDepreciationRate   = decimal.NewFromFloat(0.012)
	oldStockDepreciation     = decimal.NewFromInt(2000)

	// DepreciationDecay is applied once per elapsed year to the year-one claim.
	DepreciationDecay = decimal.NewFromFloat(0.85)
)

// DepreciationCutoffYear is the first year index with no depreciation claim.
const DepreciationCutoffYear = 10

// EstimateDepreciation returns the year-one depreciation deduction.
func EstimateDepreciation(level domain.DepreciationLevel, price, manual decimal.Decimal) decimal.Decimal {
	price = decimal.Max(price, decimal.Zero)
	switch level {
	case domain.DepreciationNew:
		return price.Mul(newBuildDepreciationRate)
	case domain.DepreciationRecent:
		return price.Mul(recentDepreciationRate)
	case domain.DepreciationOld:
		return oldStockDepreciation
	case domain.DepreciationManual:
		return manual
	default:
		return decimal.Zero
	}
}

// DepreciationForYear decays the year-one claim geometrically and stops at the cutoff.
func DepreciationForYear(base decimal.Decimal, year int) decimal.Decimal {
	if year < 0 || year >= DepreciationCutoffYear {
		return decimal.Zero
	}
	return base.Mul(DepreciationDecay.Pow(decimal.NewFromInt(int64(year))))
}
