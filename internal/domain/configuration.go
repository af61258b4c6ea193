package domain

import "github.com/shopspring/decimal"

// DefaultScenarioName labels the single run built from a bare investment block.
const DefaultScenarioName = "Base"

// Configuration is the top-level input document.
type Configuration struct {
	Investment Investment `yaml:"investment" json:"investment"`
	Scenarios  []Scenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`

	// GlobalSalary, when set, replaces the salary of every run so tax
	// effects are compared like for like.
	GlobalSalary *decimal.Decimal `yaml:"global_salary,omitempty" json:"global_salary,omitempty"`
}

// Runs returns the scenarios to calculate. A configuration without scenarios
// runs its investment block once.
func (c *Configuration) Runs() []Scenario {
	if len(c.Scenarios) > 0 {
		return c.Scenarios
	}
	return []Scenario{{Name: DefaultScenarioName, Strategy: StrategyCustom, Investment: c.Investment}}
}
