package calculation

import (
	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// WeeksPerYear is the number of rent periods in a year.
const WeeksPerYear = 52

var decimalWeeksPerYear = decimal.NewFromInt(WeeksPerYear)

// ProjectionState is carried from one projection year into the next.
type ProjectionState struct {
	PropertyValue decimal.Decimal
	WeeklyRent    decimal.Decimal
	LoanBalance   decimal.Decimal
	Expenses      domain.HoldingExpenses
}

// ProjectionModel holds everything derived once per run. Step is a pure
// function of the model and the incoming state.
type ProjectionModel struct {
	Loan LoanTerms

	CapitalGrowth decimal.Decimal // multiplicative factor, 1.06 for 6%
	RentalGrowth  decimal.Decimal
	Inflation     decimal.Decimal

	LettableWeeks     decimal.Decimal
	ManagementFeeRate decimal.Decimal

	MarginalRate     decimal.Decimal
	BaseTax          decimal.Decimal
	BaseDepreciation decimal.Decimal
}

// NewProjectionModel derives the per-run constants from a normalized snapshot.
func NewProjectionModel(inv *domain.Investment, taxCalc *IncomeTaxCalculator) ProjectionModel {
	ioMonths := 0
	if inv.IsInterestOnly {
		ioMonths = inv.InterestOnlyYears * MonthsPerYear
	}

	return ProjectionModel{
		Loan: LoanTerms{
			Principal:          LoanPrincipal(inv),
			AnnualRate:         inv.InterestRate.Div(decimalHundred),
			TermMonths:         inv.LoanTermYears * MonthsPerYear,
			InterestOnlyMonths: ioMonths,
		},
		CapitalGrowth:     growthFactor(inv.CapitalGrowthPercent),
		RentalGrowth:      growthFactor(inv.RentalGrowthPercent),
		Inflation:         growthFactor(inv.InflationPercent),
		LettableWeeks:     decimalWeeksPerYear.Sub(inv.VacancyWeeks),
		ManagementFeeRate: inv.ManagementFeePercent.Div(decimalHundred),
		MarginalRate:      taxCalc.MarginalRate(inv.AnnualSalary),
		BaseTax:           taxCalc.TotalTax(inv.AnnualSalary),
		BaseDepreciation:  EstimateDepreciation(inv.DepreciationLevel, inv.PurchasePrice, inv.ManualDepreciation),
	}
}

// InitialState is the year-0 opening position.
func (pm ProjectionModel) InitialState(inv *domain.Investment) ProjectionState {
	return ProjectionState{
		PropertyValue: inv.PurchasePrice,
		WeeklyRent:    inv.WeeklyRent,
		LoanBalance:   pm.Loan.Principal,
		Expenses:      inv.HoldingExpenses,
	}
}

// Step computes one projection year from the state carried out of the
// previous year, returning the year's record and the state for the next one.
func (pm ProjectionModel) Step(year int, s ProjectionState) (domain.YearlyProjection, ProjectionState) {
	if year > 0 {
		s.PropertyValue = s.PropertyValue.Mul(pm.CapitalGrowth)
		s.WeeklyRent = s.WeeklyRent.Mul(pm.RentalGrowth)
		s.Expenses = s.Expenses.Inflate(pm.Inflation)
	}

	grossRent := s.WeeklyRent.Mul(pm.LettableWeeks)
	managementFee := grossRent.Mul(pm.ManagementFeeRate)
	operatingExpenses := managementFee.Add(s.Expenses.Total())

	repayments := pm.Loan.AmortizeYear(year, s.LoanBalance)
	depreciation := DepreciationForYear(pm.BaseDepreciation, year)

	netCashflow := grossRent.Sub(operatingExpenses).Sub(repayments.Interest.Add(repayments.Principal))
	// principal is not deductible; interest and depreciation are
	taxableResult := grossRent.Sub(operatingExpenses).Sub(repayments.Interest).Sub(depreciation)
	refund := NegativeGearingRefund(taxableResult, pm.MarginalRate, pm.BaseTax)

	openingBalance := decimal.Max(decimal.Zero, s.LoanBalance)
	record := domain.YearlyProjection{
		Year:             year,
		PropertyValue:    s.PropertyValue,
		LoanBalance:      openingBalance,
		Equity:           decimal.Max(decimal.Zero, s.PropertyValue.Sub(openingBalance)),
		GrossRent:        grossRent,
		WeeklyRent:       s.WeeklyRent,
		NetCashflow:      netCashflow,
		AfterTaxCashflow: netCashflow.Add(refund),
		TaxRefund:        refund,
		TotalExpenses:    operatingExpenses,
		InterestPaid:     repayments.Interest,
		PrincipalPaid:    repayments.Principal,
		Depreciation:     depreciation,
	}

	s.LoanBalance = repayments.EndingBalance
	return record, s
}

// Crossovers tracks the first year (> 0) each cashflow measure turns positive.
type Crossovers struct {
	PreTax  *int
	PostTax *int
}

// Observe records year if it is the first positive year for either measure.
func (c *Crossovers) Observe(yp domain.YearlyProjection) {
	if yp.Year == 0 {
		return
	}
	if c.PreTax == nil && yp.NetCashflow.IsPositive() {
		y := yp.Year
		c.PreTax = &y
	}
	if c.PostTax == nil && yp.AfterTaxCashflow.IsPositive() {
		y := yp.Year
		c.PostTax = &y
	}
}

// Project folds Step over years 0..domain.ProjectionYears.
func (pm ProjectionModel) Project(initial ProjectionState) ([]domain.YearlyProjection, Crossovers) {
	projections := make([]domain.YearlyProjection, 0, domain.ProjectionYears+1)
	var crossovers Crossovers

	state := initial
	for year := 0; year <= domain.ProjectionYears; year++ {
		var record domain.YearlyProjection
		record, state = pm.Step(year, state)
		crossovers.Observe(record)
		projections = append(projections, record)
	}
	return projections, crossovers
}

// LoanPrincipal is the purchase price less the deposit, never negative.
func LoanPrincipal(inv *domain.Investment) decimal.Decimal {
	deposit := DepositAmount(inv)
	return decimal.Max(decimal.Zero, inv.PurchasePrice.Sub(deposit))
}

// DepositAmount is the cash deposit implied by the deposit percentage.
func DepositAmount(inv *domain.Investment) decimal.Decimal {
	return inv.PurchasePrice.Mul(inv.DepositPercent).Div(decimalHundred)
}

func growthFactor(percent decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(percent.Div(decimalHundred))
}

// percentOf returns part / whole * 100, or zero when whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimalHundred)
}
