package output

import (
	"testing"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func resultWithEquity(name string, equity int64) domain.ScenarioResult {
	return domain.ScenarioResult{
		Name: name,
		Result: domain.CalculationResult{
			Projections: []domain.YearlyProjection{
				{Year: 0},
				{Year: 1, Equity: decimal.NewFromInt(equity)},
			},
		},
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		name       string
		scenarios  []domain.ScenarioResult
		wantName   string
		wantLead   int64
		wantPctStr string
	}{
		{
			name:      "No scenarios",
			scenarios: nil,
		},
		{
			name:       "Single scenario has no lead",
			scenarios:  []domain.ScenarioResult{resultWithEquity("A", 500000)},
			wantName:   "A",
			wantLead:   0,
			wantPctStr: "0.00",
		},
		{
			name: "Highest final equity wins",
			scenarios: []domain.ScenarioResult{
				resultWithEquity("A", 800000),
				resultWithEquity("B", 1000000),
				resultWithEquity("C", 900000),
			},
			wantName:   "B",
			wantLead:   100000,
			wantPctStr: "11.11",
		},
		{
			name: "Ties keep input order",
			scenarios: []domain.ScenarioResult{
				resultWithEquity("A", 1000000),
				resultWithEquity("B", 1000000),
			},
			wantName:   "A",
			wantLead:   0,
			wantPctStr: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := AnalyzeScenarios(&domain.ScenarioComparison{Scenarios: tt.scenarios})
			assert.Equal(t, tt.wantName, rec.ScenarioName)
			if tt.wantName == "" {
				return
			}
			assert.True(t, rec.EquityLead.Equal(decimal.NewFromInt(tt.wantLead)), "lead %s", rec.EquityLead)
			assert.Equal(t, tt.wantPctStr, rec.PercentageChange.StringFixed(2))
		})
	}
}
