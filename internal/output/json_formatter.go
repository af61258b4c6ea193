package output

import (
	"encoding/json"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/propcalc/investment-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// ratioPlaces is the precision kept on percentages and fractions in reports.
const ratioPlaces = 4

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Money is rounded to cents and ratios to four places; inputs are written as given.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(roundComparison(results), "", "  ")
}

func cents(d decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(d).Round().Decimal
}

// roundComparison returns a copy of results with report precision applied.
func roundComparison(results *domain.ScenarioComparison) *domain.ScenarioComparison {
	out := *results
	out.Scenarios = make([]domain.ScenarioResult, len(results.Scenarios))
	for i, sc := range results.Scenarios {
		sc.Result = roundResult(sc.Result)
		out.Scenarios[i] = sc
	}
	if be := results.BreakEven; be != nil {
		rounded := *be
		rounded.Fraction = be.Fraction.Round(ratioPlaces)
		rounded.CumulativeAmount = cents(be.CumulativeAmount)
		out.BreakEven = &rounded
	}
	return &out
}

func roundResult(r domain.CalculationResult) domain.CalculationResult {
	r.StampDuty = cents(r.StampDuty)
	r.UpfrontCostsTotal = cents(r.UpfrontCostsTotal)
	r.DepositAmount = cents(r.DepositAmount)
	r.TotalCashRequired = cents(r.TotalCashRequired)
	r.LoanAmount = cents(r.LoanAmount)
	r.LVR = r.LVR.Round(ratioPlaces)
	r.GrossYield = r.GrossYield.Round(ratioPlaces)
	r.NetYield = r.NetYield.Round(ratioPlaces)
	r.MarginalTaxRate = r.MarginalTaxRate.Round(ratioPlaces)

	fy := &r.FirstYearCashflow
	fy.PotentialGrossRent = cents(fy.PotentialGrossRent)
	fy.VacancyLoss = cents(fy.VacancyLoss)
	fy.EffectiveGrossRent = cents(fy.EffectiveGrossRent)
	fy.ManagementFees = cents(fy.ManagementFees)
	fy.OtherOperatingExpenses = cents(fy.OtherOperatingExpenses)
	fy.MortgageRepayments = cents(fy.MortgageRepayments)
	fy.NetCashflow = cents(fy.NetCashflow)
	fy.TaxRefund = cents(fy.TaxRefund)
	fy.AfterTaxCashflow = cents(fy.AfterTaxCashflow)
	fy.Depreciation = cents(fy.Depreciation)

	projections := make([]domain.YearlyProjection, len(r.Projections))
	for i, yp := range r.Projections {
		yp.PropertyValue = cents(yp.PropertyValue)
		yp.LoanBalance = cents(yp.LoanBalance)
		yp.Equity = cents(yp.Equity)
		yp.GrossRent = cents(yp.GrossRent)
		yp.WeeklyRent = cents(yp.WeeklyRent)
		yp.NetCashflow = cents(yp.NetCashflow)
		yp.AfterTaxCashflow = cents(yp.AfterTaxCashflow)
		yp.TaxRefund = cents(yp.TaxRefund)
		yp.TotalExpenses = cents(yp.TotalExpenses)
		yp.InterestPaid = cents(yp.InterestPaid)
		yp.PrincipalPaid = cents(yp.PrincipalPaid)
		yp.Depreciation = cents(yp.Depreciation)
		projections[i] = yp
	}
	r.Projections = projections
	return r
}
