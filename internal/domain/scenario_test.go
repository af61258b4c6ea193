package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStrategy(t *testing.T) {
	base := Investment{
		CapitalGrowthPercent: decimal.NewFromFloat(6.5),
		RentalGrowthPercent:  decimal.NewFromFloat(3.5),
	}

	testCases := []struct {
		strategy GrowthStrategy
		capital  float64
		rental   float64
	}{
		{StrategyGrowth, 7, 5},
		{StrategyYield, 5, 4},
		{StrategyBalanced, 6, 4},
		{StrategyCustom, 6.5, 3.5},
		{"", 6.5, 3.5},
	}

	for _, tc := range testCases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			got, err := ApplyStrategy(base, tc.strategy)
			require.NoError(t, err)
			assert.Equal(t, tc.capital, got.CapitalGrowthPercent.InexactFloat64())
			assert.Equal(t, tc.rental, got.RentalGrowthPercent.InexactFloat64())
		})
	}

	// the input snapshot is never modified
	assert.Equal(t, 6.5, base.CapitalGrowthPercent.InexactFloat64())
}

func TestApplyStrategy_Unknown(t *testing.T) {
	_, err := ApplyStrategy(Investment{}, GrowthStrategy("moonshot"))
	assert.ErrorContains(t, err, "moonshot")
	assert.False(t, GrowthStrategy("moonshot").Valid())
	assert.True(t, GrowthStrategy("").Valid())
}

func TestCalculationResult_YearAt(t *testing.T) {
	cr := &CalculationResult{}
	assert.Nil(t, cr.FinalYear())
	assert.Nil(t, cr.YearAt(0))

	for y := 0; y <= ProjectionYears; y++ {
		cr.Projections = append(cr.Projections, YearlyProjection{Year: y})
	}
	require.NotNil(t, cr.FinalYear())
	assert.Equal(t, ProjectionYears, cr.FinalYear().Year)
	assert.Equal(t, 12, cr.YearAt(12).Year)
	assert.Nil(t, cr.YearAt(ProjectionYears+1))
	assert.Nil(t, cr.YearAt(-1))
}
