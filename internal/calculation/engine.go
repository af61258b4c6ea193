package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNoScenarios is returned when a comparison is requested without scenarios.
var ErrNoScenarios = errors.New("no scenarios to compare")

// CalculationEngine orchestrates the property projection
type CalculationEngine struct {
	TaxCalc *IncomeTaxCalculator
	Logger  Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewIncomeTaxCalculator2025(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate projects the investment over years 0..30. It performs no I/O and
// is total: out-of-range inputs are clamped rather than rejected, and the
// same snapshot always yields the same result.
func (ce *CalculationEngine) Calculate(inv domain.Investment) *domain.CalculationResult {
	normalized := ce.normalize(inv)

	model := NewProjectionModel(&normalized, ce.TaxCalc)
	projections, crossovers := model.Project(model.InitialState(&normalized))

	ce.Logger.Debugf("projection complete: loan=%s marginal_rate=%s positive_year=%s positive_after_tax_year=%s",
		model.Loan.Principal.StringFixed(2), model.MarginalRate.String(),
		yearString(crossovers.PreTax), yearString(crossovers.PostTax))

	return aggregate(&normalized, model, projections, crossovers)
}

// normalize clamps inputs into the ranges the model is defined on.
func (ce *CalculationEngine) normalize(inv domain.Investment) domain.Investment {
	clamp := func(field string, v, lo decimal.Decimal, hi *decimal.Decimal) decimal.Decimal {
		out := decimal.Max(v, lo)
		if hi != nil {
			out = decimal.Min(out, *hi)
		}
		if !out.Equal(v) {
			ce.Logger.Warnf("%s %s out of range, using %s", field, v.String(), out.String())
		}
		return out
	}

	maxDeposit := decimalHundred
	maxVacancy := decimalWeeksPerYear

	inv.PurchasePrice = clamp("purchase_price", inv.PurchasePrice, decimal.Zero, nil)
	inv.DepositPercent = clamp("deposit_percent", inv.DepositPercent, decimal.Zero, &maxDeposit)
	inv.InterestRate = clamp("interest_rate", inv.InterestRate, decimal.Zero, nil)
	inv.VacancyWeeks = clamp("vacancy_weeks", inv.VacancyWeeks, decimal.Zero, &maxVacancy)
	inv.AnnualSalary = clamp("annual_salary", inv.AnnualSalary, decimal.Zero, nil)

	if inv.LoanTermYears < 0 {
		ce.Logger.Warnf("loan_term_years %d out of range, using 0", inv.LoanTermYears)
		inv.LoanTermYears = 0
	}
	if inv.InterestOnlyYears < 0 {
		ce.Logger.Warnf("interest_only_years %d out of range, using 0", inv.InterestOnlyYears)
		inv.InterestOnlyYears = 0
	}
	return inv
}

// aggregate assembles the year-0 snapshot and the yearly records into the result.
func aggregate(inv *domain.Investment, model ProjectionModel, projections []domain.YearlyProjection, crossovers Crossovers) *domain.CalculationResult {
	y0 := projections[0]

	potentialRent := inv.WeeklyRent.Mul(decimalWeeksPerYear)
	managementFees := y0.GrossRent.Mul(model.ManagementFeeRate)

	deposit := DepositAmount(inv)
	upfront := inv.UpfrontCosts()

	return &domain.CalculationResult{
		StampDuty:         inv.StampDuty,
		UpfrontCostsTotal: upfront,
		DepositAmount:     deposit,
		TotalCashRequired: deposit.Add(upfront),
		LoanAmount:        model.Loan.Principal,
		LVR:               percentOf(model.Loan.Principal, inv.PurchasePrice),
		GrossYield:        percentOf(y0.GrossRent, inv.PurchasePrice),
		NetYield:          percentOf(y0.GrossRent.Sub(y0.TotalExpenses), inv.PurchasePrice),
		MarginalTaxRate:   model.MarginalRate,
		FirstYearCashflow: domain.FirstYearCashflow{
			PotentialGrossRent:     potentialRent,
			VacancyLoss:            potentialRent.Sub(y0.GrossRent),
			EffectiveGrossRent:     y0.GrossRent,
			ManagementFees:         managementFees,
			OtherOperatingExpenses: y0.TotalExpenses.Sub(managementFees),
			MortgageRepayments:     y0.MortgagePayment(),
			NetCashflow:            y0.NetCashflow,
			TaxRefund:              y0.TaxRefund,
			AfterTaxCashflow:       y0.AfterTaxCashflow,
			Depreciation:           y0.Depreciation,
		},
		Projections:                  projections,
		PositiveCashflowYear:         crossovers.PreTax,
		PositiveCashflowAfterTaxYear: crossovers.PostTax,
	}
}

// Compare runs every scenario and ranks them. The first two scenarios are
// also checked for a cumulative after-tax cashflow crossover.
func (ce *CalculationEngine) Compare(ctx context.Context, scenarios []domain.Scenario) (*domain.ScenarioComparison, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	comparison := &domain.ScenarioComparison{
		Scenarios: make([]domain.ScenarioResult, 0, len(scenarios)),
	}

	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled at scenario %d: %w", i, err)
		}

		inv, err := domain.ApplyStrategy(sc.Investment, sc.Strategy)
		if err != nil {
			ce.Logger.Errorf("scenario %q rejected: %v", sc.Name, err)
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		ce.Logger.Infof("running scenario %q (strategy=%s)", sc.Name, strategyName(sc.Strategy))
		comparison.Scenarios = append(comparison.Scenarios, domain.ScenarioResult{
			Name:     sc.Name,
			Strategy: sc.Strategy,
			Input:    inv,
			Result:   *ce.Calculate(inv),
		})
	}

	comparison.BestEquityScenario, comparison.BestCashflowScenario = rankScenarios(comparison.Scenarios)

	if len(comparison.Scenarios) >= 2 {
		a, b := comparison.Scenarios[0], comparison.Scenarios[1]
		be, err := CalculateCumulativeBreakEven(a.Result.Projections, b.Result.Projections)
		if err != nil {
			ce.Logger.Errorf("break-even between %q and %q failed: %v", a.Name, b.Name, err)
			return nil, fmt.Errorf("break-even between %q and %q: %w", a.Name, b.Name, err)
		}
		if be != nil {
			be.ScenarioA, be.ScenarioB = a.Name, b.Name
			comparison.BreakEven = be
		}
	}

	return comparison, nil
}

// rankScenarios picks the highest final-year equity and the best year-0
// after-tax cashflow. Ties keep the earlier scenario.
func rankScenarios(results []domain.ScenarioResult) (bestEquity, bestCashflow string) {
	var equity, cashflow decimal.Decimal
	for i, r := range results {
		final := r.Result.FinalYear()
		if final == nil {
			continue
		}
		if i == 0 || final.Equity.GreaterThan(equity) {
			equity = final.Equity
			bestEquity = r.Name
		}
		after := r.Result.FirstYearCashflow.AfterTaxCashflow
		if i == 0 || after.GreaterThan(cashflow) {
			cashflow = after
			bestCashflow = r.Name
		}
	}
	return bestEquity, bestCashflow
}

func strategyName(s domain.GrowthStrategy) string {
	if s == "" {
		return string(domain.StrategyCustom)
	}
	return string(s)
}

func yearString(y *int) string {
	if y == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *y)
}
