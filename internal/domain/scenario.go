package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GrowthStrategy is a named preset for capital and rental growth assumptions.
type GrowthStrategy string

const (
	StrategyGrowth   GrowthStrategy = "growth"
	StrategyYield    GrowthStrategy = "yield"
	StrategyBalanced GrowthStrategy = "balanced"
	StrategyCustom   GrowthStrategy = "custom"
)

type growthPreset struct {
	capital decimal.Decimal
	rental  decimal.Decimal
}

var growthPresets = map[GrowthStrategy]growthPreset{
	StrategyGrowth:   {decimal.NewFromInt(7), decimal.NewFromInt(5)},
	StrategyYield:    {decimal.NewFromInt(5), decimal.NewFromInt(4)},
	StrategyBalanced: {decimal.NewFromInt(6), decimal.NewFromInt(4)},
}

// Valid reports whether s is a known strategy. The empty strategy is treated as custom.
func (s GrowthStrategy) Valid() bool {
	if s == "" || s == StrategyCustom {
		return true
	}
	_, ok := growthPresets[s]
	return ok
}

func (s *GrowthStrategy) UnmarshalText(text []byte) error {
	*s = GrowthStrategy(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// ApplyStrategy returns a copy of inv with the preset growth rates for s.
// Custom (or empty) leaves the snapshot untouched.
func ApplyStrategy(inv Investment, s GrowthStrategy) (Investment, error) {
	if s == "" || s == StrategyCustom {
		return inv, nil
	}
	preset, ok := growthPresets[s]
	if !ok {
		return inv, fmt.Errorf("unknown growth strategy %q", s)
	}
	inv.CapitalGrowthPercent = preset.capital
	inv.RentalGrowthPercent = preset.rental
	return inv, nil
}

// Scenario is a named investment snapshot used for side-by-side comparison.
type Scenario struct {
	Name       string         `yaml:"name" json:"name"`
	Strategy   GrowthStrategy `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	Investment Investment     `yaml:"investment" json:"investment"`
}

// ScenarioResult pairs a scenario with its projection.
type ScenarioResult struct {
	Name     string            `json:"name"`
	Strategy GrowthStrategy    `json:"strategy,omitempty"`
	Input    Investment        `json:"input"`
	Result   CalculationResult `json:"result"`
}

// ScenarioComparison collects the results of several scenarios.
type ScenarioComparison struct {
	Scenarios []ScenarioResult `json:"scenarios"`

	BestEquityScenario   string `json:"best_equity_scenario"`
	BestCashflowScenario string `json:"best_cashflow_scenario"`

	// Cumulative after-tax cashflow crossover of the first two scenarios, if any.
	BreakEven *CashflowBreakEven `json:"break_even,omitempty"`
}

// CashflowBreakEven describes the point where cumulative after-tax cashflow
// of two scenarios is equal.
type CashflowBreakEven struct {
	ScenarioA string `json:"scenario_a"`
	ScenarioB string `json:"scenario_b"`

	// Year index in which the crossover happens
	YearIndex int `json:"year_index"`
	// Fraction (0..1) of YearIndex elapsed at the crossover
	Fraction         decimal.Decimal `json:"fraction_of_year"`
	FractionalYear   float64         `json:"fractional_year"`
	Month            int             `json:"month"`
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`
}
