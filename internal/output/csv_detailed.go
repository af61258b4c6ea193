package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/propcalc/investment-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw annual projection per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "PropertyValue", "LoanBalance", "Equity", "WeeklyRent", "GrossRent", "TotalExpenses", "InterestPaid", "PrincipalPaid", "Depreciation", "NetCashflow", "TaxRefund", "AfterTaxCashflow", "CashflowPositive"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, yr := range sc.Result.Projections {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				amount(yr.PropertyValue),
				amount(yr.LoanBalance),
				amount(yr.Equity),
				amount(yr.WeeklyRent),
				amount(yr.GrossRent),
				amount(yr.TotalExpenses),
				amount(yr.InterestPaid),
				amount(yr.PrincipalPaid),
				amount(yr.Depreciation),
				amount(yr.NetCashflow),
				amount(yr.TaxRefund),
				amount(yr.AfterTaxCashflow),
				boolToString(yr.NetCashflow.IsPositive()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
