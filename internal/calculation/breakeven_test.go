package calculation

import (
	"testing"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeYP(year int, afterTax float64) domain.YearlyProjection {
	return domain.YearlyProjection{
		Year:             year,
		AfterTaxCashflow: decimal.NewFromFloat(afterTax),
	}
}

// Test exact year crossover
func TestCalculateCumulativeBreakEven_ExactYear(t *testing.T) {
	// A and B meet exactly at the end of year 1 with cumulative 300
	projA := []domain.YearlyProjection{makeYP(0, 100), makeYP(1, 200)}
	projB := []domain.YearlyProjection{makeYP(0, 150), makeYP(1, 150)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.YearIndex)
	assert.True(t, res.CumulativeAmount.Equal(decimal.NewFromInt(300)), "got %s", res.CumulativeAmount)
	assert.Equal(t, 12, res.Month)
}

// Test mid-year interpolation crossover
func TestCalculateCumulativeBreakEven_Interpolation(t *testing.T) {
	// After year 0: A=100, B=80 (diff=20)
	// Year 1: A adds 100, B adds 140 -> A=200, B=220 (diff=-20)
	// prevDiff=20, currDiff=-20 => t = 20/(20+20) = 0.5
	projA := []domain.YearlyProjection{makeYP(0, 100), makeYP(1, 100)}
	projB := []domain.YearlyProjection{makeYP(0, 80), makeYP(1, 140)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.YearIndex)
	assert.InDelta(t, 0.5, res.Fraction.InexactFloat64(), 0.001)
	assert.InDelta(t, 1.5, res.FractionalYear, 0.001)
	assert.Equal(t, 6, res.Month)
	assert.InDelta(t, 150.0, res.CumulativeAmount.InexactFloat64(), 0.01)
}

func TestCalculateCumulativeBreakEven_NoCrossover(t *testing.T) {
	projA := []domain.YearlyProjection{makeYP(0, 100), makeYP(1, 100), makeYP(2, 100)}
	projB := []domain.YearlyProjection{makeYP(0, 50), makeYP(1, 50), makeYP(2, 50)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCumulativeBreakEven_IdenticalFirstYearIsNotCrossover(t *testing.T) {
	projA := []domain.YearlyProjection{makeYP(0, 100), makeYP(1, 300)}
	projB := []domain.YearlyProjection{makeYP(0, 100), makeYP(1, 200)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCumulativeBreakEven_Empty(t *testing.T) {
	_, err := CalculateCumulativeBreakEven(nil, []domain.YearlyProjection{makeYP(0, 1)})
	assert.Error(t, err)
}
