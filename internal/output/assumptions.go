package output

import (
	"fmt"

	"github.com/propcalc/investment-calculator/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions that hold for every run.
var DefaultAssumptions = []string{
	"Income tax: 2024-25 resident brackets held constant (no indexing, no Medicare levy)",
	"Negative gearing refund at the marginal rate, capped at tax payable on salary",
	"Repayments computed monthly; interest-only months count toward the loan term",
	"Depreciation decays 15% a year and stops after year 9",
	"Stamp duty: general transfer duty, no first home buyer concessions",
}

// GenerateAssumptions creates the assumptions list from a scenario's actual inputs.
func GenerateAssumptions(inv *domain.Investment) []string {
	out := []string{
		fmt.Sprintf("Capital growth: %s%% annually", inv.CapitalGrowthPercent.StringFixed(1)),
		fmt.Sprintf("Rental growth: %s%% annually", inv.RentalGrowthPercent.StringFixed(1)),
		fmt.Sprintf("Expense inflation: %s%% annually", inv.InflationPercent.StringFixed(1)),
		fmt.Sprintf("Depreciation: %s", inv.DepreciationLevel.Label()),
	}
	return append(out, DefaultAssumptions...)
}
