package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/propcalc/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PROPERTY SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := &sc.Result
		var equity10, equity30 string
		if y := r.YearAt(10); y != nil {
			equity10 = FormatWholeCurrency(y.Equity)
		}
		if y := r.FinalYear(); y != nil {
			equity30 = FormatWholeCurrency(y.Equity)
		}
		fmt.Fprintf(&buf, "%s: Loan=%s LVR=%s AfterTaxCF=%s Equity10=%s Equity30=%s\n",
			sc.Name,
			FormatWholeCurrency(r.LoanAmount),
			FormatPercentage(r.LVR),
			FormatWholeCurrency(r.FirstYearCashflow.AfterTaxCashflow),
			equity10,
			equity30,
		)
		fmt.Fprintf(&buf, "  PositiveYear=%s PositiveAfterTaxYear=%s\n",
			formatYear(r.PositiveCashflowYear, "never"), formatYear(r.PositiveCashflowAfterTaxYear, "never"))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatWholeCurrency(rec.EquityLead), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
