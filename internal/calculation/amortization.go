package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of amortization periods in a projection year.
const MonthsPerYear = 12

// BalanceScale is the number of decimal places kept on monthly interest,
// payments and the running balance.
const BalanceScale = 10

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(MonthsPerYear)
	decimalHundred = decimal.NewFromInt(100)
)

// LoanTerms describe the financing of the purchase.
//
// Interest-only months count toward the term: a 30 year loan with 5 years
// interest-only amortizes over the remaining 25 years.
type LoanTerms struct {
	Principal          decimal.Decimal
	AnnualRate         decimal.Decimal // fraction, 0.065 for 6.5%
	TermMonths         int
	InterestOnlyMonths int
}

// MonthlyRate is the nominal annual rate divided evenly across twelve months.
func (lt LoanTerms) MonthlyRate() decimal.Decimal {
	return lt.AnnualRate.Div(decimalTwelve)
}

// IsInterestOnly reports whether the 1-based global month falls in the interest-only window.
func (lt LoanTerms) IsInterestOnly(month int) bool {
	return month <= lt.InterestOnlyMonths
}

// RemainingMonths is the number of P&I payments left, including the current
// 1-based global month. It is zero or negative once the term is exhausted.
func (lt LoanTerms) RemainingMonths(month int) int {
	return lt.TermMonths - (month - 1)
}

// MonthlyPayment returns the scheduled payment for month given the opening
// balance. When one or fewer payments remain the whole balance plus
// interest falls due.
func (lt LoanTerms) MonthlyPayment(month int, balance decimal.Decimal) decimal.Decimal {
	rate := lt.MonthlyRate()
	interest := balance.Mul(rate)

	if lt.IsInterestOnly(month) {
		return interest
	}

	remaining := lt.RemainingMonths(month)
	if remaining <= 1 {
		return balance.Add(interest)
	}

	if rate.IsZero() {
		return balance.Div(decimal.NewFromInt(int64(remaining)))
	}

	// M = B * r(1+r)^n / ((1+r)^n - 1); the power is taken in float64
	factor := decimal.NewFromFloat(math.Pow(1+rate.InexactFloat64(), float64(remaining)))
	return balance.Mul(rate).Mul(factor).Div(factor.Sub(decimalOne))
}

// MonthlyRepayment is one amortization period.
type MonthlyRepayment struct {
	Month         int // 1-based global month
	Payment       decimal.Decimal
	Interest      decimal.Decimal
	Principal     decimal.Decimal
	EndingBalance decimal.Decimal
}

// Repay applies one month's payment to balance. Principal never exceeds the
// outstanding balance, so the balance cannot go negative. Interest and payment
// are rounded to BalanceScale places, which keeps the balance at that scale.
func (lt LoanTerms) Repay(month int, balance decimal.Decimal) MonthlyRepayment {
	interest := balance.Mul(lt.MonthlyRate()).Round(BalanceScale)
	payment := lt.MonthlyPayment(month, balance).Round(BalanceScale)

	principal := decimal.Max(decimal.Zero, payment.Sub(interest))
	principal = decimal.Min(principal, balance)

	return MonthlyRepayment{
		Month:         month,
		Payment:       payment,
		Interest:      interest,
		Principal:     principal,
		EndingBalance: balance.Sub(principal),
	}
}

// YearRepayments totals the twelve monthly periods of a projection year.
type YearRepayments struct {
	Interest      decimal.Decimal
	Principal     decimal.Decimal
	EndingBalance decimal.Decimal
	Months        []MonthlyRepayment
}

// AmortizeYear runs the monthly sub-loop for year (0-based) from its opening balance.
func (lt LoanTerms) AmortizeYear(year int, balance decimal.Decimal) YearRepayments {
	out := YearRepayments{
		Interest:  decimal.Zero,
		Principal: decimal.Zero,
		Months:    make([]MonthlyRepayment, 0, MonthsPerYear),
	}

	for m := 1; m <= MonthsPerYear; m++ {
		r := lt.Repay(year*MonthsPerYear+m, balance)
		out.Interest = out.Interest.Add(r.Interest)
		out.Principal = out.Principal.Add(r.Principal)
		out.Months = append(out.Months, r)
		balance = r.EndingBalance
	}

	out.EndingBalance = balance
	return out
}
