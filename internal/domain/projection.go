package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionYears is the last year index of every projection (years 0..30 inclusive).
const ProjectionYears = 30

// YearlyProjection is the outcome of a single projection year
type YearlyProjection struct {
	Year          int             `json:"year"`
	PropertyValue decimal.Decimal `json:"property_value"`
	LoanBalance   decimal.Decimal `json:"loan_balance"` // start of year
	Equity        decimal.Decimal `json:"equity"`
	GrossRent     decimal.Decimal `json:"gross_rent"`
	WeeklyRent    decimal.Decimal `json:"weekly_rent"`

	NetCashflow      decimal.Decimal `json:"net_cashflow"`
	AfterTaxCashflow decimal.Decimal `json:"after_tax_cashflow"`
	TaxRefund        decimal.Decimal `json:"tax_refund"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`

	InterestPaid  decimal.Decimal `json:"interest_paid"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"`
	Depreciation  decimal.Decimal `json:"depreciation"`
}

// MortgagePayment is the total of interest and principal paid during the year.
func (yp *YearlyProjection) MortgagePayment() decimal.Decimal {
	return yp.InterestPaid.Add(yp.PrincipalPaid)
}

// EndingBalance is the loan balance carried into the next year.
func (yp *YearlyProjection) EndingBalance() decimal.Decimal {
	return decimal.Max(decimal.Zero, yp.LoanBalance.Sub(yp.PrincipalPaid))
}

// FirstYearCashflow breaks down the un-inflated year-0 position.
type FirstYearCashflow struct {
	PotentialGrossRent     decimal.Decimal `json:"potential_gross_rent"`
	VacancyLoss            decimal.Decimal `json:"vacancy_loss"`
	EffectiveGrossRent     decimal.Decimal `json:"effective_gross_rent"`
	ManagementFees         decimal.Decimal `json:"management_fees"`
	OtherOperatingExpenses decimal.Decimal `json:"other_operating_expenses"`
	MortgageRepayments     decimal.Decimal `json:"mortgage_repayments"`
	NetCashflow            decimal.Decimal `json:"net_cashflow"`
	TaxRefund              decimal.Decimal `json:"tax_refund"`
	AfterTaxCashflow       decimal.Decimal `json:"after_tax_cashflow"`
	Depreciation           decimal.Decimal `json:"depreciation"`
}

// CalculationResult is the full output of one projection run.
type CalculationResult struct {
	StampDuty         decimal.Decimal `json:"stamp_duty"`
	UpfrontCostsTotal decimal.Decimal `json:"upfront_costs_total"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`
	TotalCashRequired decimal.Decimal `json:"total_cash_required"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	LVR               decimal.Decimal `json:"lvr"` // percent
	GrossYield        decimal.Decimal `json:"gross_yield"`
	NetYield          decimal.Decimal `json:"net_yield"`
	MarginalTaxRate   decimal.Decimal `json:"marginal_tax_rate"` // fraction

	FirstYearCashflow FirstYearCashflow  `json:"first_year_cashflow"`
	Projections       []YearlyProjection `json:"projections"`

	// nil when the measure never turns positive within the horizon
	PositiveCashflowYear         *int `json:"positive_cashflow_year"`
	PositiveCashflowAfterTaxYear *int `json:"positive_cashflow_after_tax_year"`
}

// FinalYear returns the last projection record, or nil for an empty result.
func (cr *CalculationResult) FinalYear() *YearlyProjection {
	if len(cr.Projections) == 0 {
		return nil
	}
	return &cr.Projections[len(cr.Projections)-1]
}

// YearAt returns the record for a year index, or nil when out of range.
func (cr *CalculationResult) YearAt(year int) *YearlyProjection {
	if year < 0 || year >= len(cr.Projections) {
		return nil
	}
	return &cr.Projections[year]
}
