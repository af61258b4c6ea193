package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Strategy", "State", "PurchasePrice", "StampDuty", "TotalCashRequired", "LoanAmount", "LVR", "GrossYield", "NetYield", "MarginalTaxRate", "Year0NetCashflow", "Year0TaxRefund", "Year0AfterTaxCashflow", "PositiveCashflowYear", "PositiveAfterTaxYear", "Year10Equity", "Year30Equity", "Year30PropertyValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := &sc.Result
		fy := r.FirstYearCashflow
		row := []string{
			sc.Name,
			string(sc.Strategy),
			string(sc.Input.State),
			amount(sc.Input.PurchasePrice),
			amount(r.StampDuty),
			amount(r.TotalCashRequired),
			amount(r.LoanAmount),
			r.LVR.StringFixed(2),
			r.GrossYield.StringFixed(2),
			r.NetYield.StringFixed(2),
			r.MarginalTaxRate.StringFixed(2),
			amount(fy.NetCashflow),
			amount(fy.TaxRefund),
			amount(fy.AfterTaxCashflow),
			formatYear(r.PositiveCashflowYear, ""),
			formatYear(r.PositiveCashflowAfterTaxYear, ""),
			equityAt(r, 10),
			equityAt(r, domain.ProjectionYears),
			valueAt(r, domain.ProjectionYears),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func equityAt(r *domain.CalculationResult, year int) string {
	return fieldAt(r, year, func(yp *domain.YearlyProjection) decimal.Decimal { return yp.Equity })
}

func valueAt(r *domain.CalculationResult, year int) string {
	return fieldAt(r, year, func(yp *domain.YearlyProjection) decimal.Decimal { return yp.PropertyValue })
}

func fieldAt(r *domain.CalculationResult, year int, get func(*domain.YearlyProjection) decimal.Decimal) string {
	yp := r.YearAt(year)
	if yp == nil {
		return ""
	}
	return amount(get(yp))
}
