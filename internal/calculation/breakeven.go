package calculation

import (
	"fmt"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var breakEvenTolerance = decimal.NewFromFloat(0.01)

// CalculateCumulativeBreakEven finds the first crossover (if any) between the
// cumulative after-tax cashflow of projection A and projection B. Projections
// must be aligned by year index. The crossover year is linearly interpolated
// from the cumulative difference. If no crossover is found, returns nil, nil.
func CalculateCumulativeBreakEven(projA, projB []domain.YearlyProjection) (*domain.CashflowBreakEven, error) {
	if len(projA) == 0 || len(projB) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	n := len(projA)
	if len(projB) < n {
		n = len(projB)
	}

	cumA := decimal.Zero
	cumB := decimal.Zero

	for i := 0; i < n; i++ {
		yearA := projA[i].AfterTaxCashflow
		yearB := projB[i].AfterTaxCashflow

		prevDiff := cumA.Sub(cumB)
		cumA = cumA.Add(yearA)
		cumB = cumB.Add(yearB)
		currDiff := cumA.Sub(cumB)

		// Identical first years are not a crossover.
		if i > 0 && currDiff.Abs().LessThan(breakEvenTolerance) {
			return newBreakEven(projA[i].Year, decimalOne, cumA), nil
		}

		if i > 0 && prevDiff.Mul(currDiff).IsNegative() {
			// diff(t) = prevDiff + t*(currDiff - prevDiff) = 0
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			t = decimal.Min(decimal.Max(t, decimal.Zero), decimalOne)

			cumAt := cumA.Sub(yearA).Add(yearA.Mul(t))
			return newBreakEven(projA[i].Year, t, cumAt), nil
		}
	}

	return nil, nil
}

func newBreakEven(year int, fraction, cumulative decimal.Decimal) *domain.CashflowBreakEven {
	f := fraction.InexactFloat64()
	month := int(f * 12)
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}
	return &domain.CashflowBreakEven{
		YearIndex:        year,
		Fraction:         fraction,
		FractionalYear:   float64(year) + f,
		Month:            month,
		CumulativeAmount: cumulative,
	}
}
