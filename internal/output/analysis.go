package output

import (
	"sort"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	FinalEquity  decimal.Decimal
	// Lead over the runner-up; zero with a single scenario.
	EquityLead       decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the highest final-year equity
// and how far it leads the next best. Ties keep input order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name   string
		equity decimal.Decimal
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		final := sc.Result.FinalYear()
		if final == nil {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, final.Equity})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].equity.GreaterThan(ranks[j].equity) })

	best := ranks[0]
	rec := Recommendation{ScenarioName: best.name, FinalEquity: best.equity}
	if len(ranks) > 1 {
		runnerUp := ranks[1].equity
		rec.EquityLead = best.equity.Sub(runnerUp)
		if runnerUp.IsPositive() {
			rec.PercentageChange = rec.EquityLead.Div(runnerUp).Mul(decimalHundred)
		}
	}
	return rec
}
