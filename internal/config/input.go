package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/propcalc/investment-calculator/internal/calculation"
	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrValidation marks a configuration that is structurally unusable.
var ErrValidation = errors.New("invalid configuration")

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultInvestment returns the calculator's default purchase: an $850k
// Queensland house on a 30 year P&I loan.
func DefaultInvestment() domain.Investment {
	inv := domain.Investment{
		PurchasePrice:     decimal.NewFromInt(850000),
		State:             domain.QLD,
		DepositPercent:    decimal.NewFromInt(20),
		InterestRate:      decimal.NewFromFloat(6.5),
		LoanTermYears:     30,
		IsInterestOnly:    false,
		InterestOnlyYears: 5,

		BuyersAgentFee:  decimal.NewFromInt(15000),
		SolicitorFee:    decimal.NewFromInt(2000),
		BuildingPestFee: decimal.NewFromInt(600),
		OtherUpfront:    decimal.Zero,

		WeeklyRent:           decimal.NewFromInt(750),
		ManagementFeePercent: decimal.NewFromInt(7),
		VacancyWeeks:         decimal.NewFromInt(2),
		HoldingExpenses: domain.HoldingExpenses{
			CouncilRates:       decimal.NewFromInt(2500),
			Insurance:          decimal.NewFromInt(1800),
			RepairsMaintenance: decimal.NewFromInt(1000),
			LandTax:            decimal.Zero,
			BodyCorp:           decimal.Zero,
			OtherExpenses:      decimal.Zero,
		},

		AnnualSalary:       decimal.NewFromInt(120000),
		DepreciationLevel:  domain.DepreciationRecent,
		ManualDepreciation: decimal.Zero,

		CapitalGrowthPercent: decimal.NewFromInt(6),
		RentalGrowthPercent:  decimal.NewFromInt(4),
		InflationPercent:     decimal.NewFromInt(3),
	}
	inv.StampDuty = calculation.EstimateStampDuty(inv.State, inv.PurchasePrice)
	return inv
}

type rawScenario struct {
	Name       string                `yaml:"name"`
	Strategy   domain.GrowthStrategy `yaml:"strategy"`
	Investment yaml.Node             `yaml:"investment"`
}

type rawConfiguration struct {
	Investment   yaml.Node        `yaml:"investment"`
	Scenarios    []rawScenario    `yaml:"scenarios"`
	GlobalSalary *decimal.Decimal `yaml:"global_salary"`
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a configuration document. Omitted investment fields fall
// back to DefaultInvestment; scenario investments inherit from the top-level
// investment block. Stamp duty is estimated whenever no level sets it.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var raw rawConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base, baseDuty, err := decodeInvestment(&raw.Investment, DefaultInvestment(), false)
	if err != nil {
		return nil, fmt.Errorf("investment: %w", err)
	}

	config := &domain.Configuration{
		Investment:   base,
		GlobalSalary: raw.GlobalSalary,
	}

	for i, rs := range raw.Scenarios {
		inv, _, err := decodeInvestment(&rs.Investment, base, baseDuty)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: investment: %w", i, err)
		}
		config.Scenarios = append(config.Scenarios, domain.Scenario{
			Name:       rs.Name,
			Strategy:   rs.Strategy,
			Investment: inv,
		})
	}

	applyGlobalSalary(config)

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// decodeInvestment overlays node onto base. explicitDuty reports whether
// stamp duty was given at this level or an enclosing one.
func decodeInvestment(node *yaml.Node, base domain.Investment, explicitDuty bool) (domain.Investment, bool, error) {
	inv := base
	if node.Kind != 0 {
		if err := node.Decode(&inv); err != nil {
			return inv, false, err
		}
		explicitDuty = explicitDuty || hasKey(node, "stamp_duty")
	}
	if !explicitDuty {
		inv.StampDuty = calculation.EstimateStampDuty(inv.State, inv.PurchasePrice)
	}
	return inv, explicitDuty, nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func applyGlobalSalary(config *domain.Configuration) {
	if config.GlobalSalary == nil {
		return
	}
	config.Investment.AnnualSalary = *config.GlobalSalary
	for i := range config.Scenarios {
		config.Scenarios[i].Investment.AnnualSalary = *config.GlobalSalary
	}
}

// ValidateConfiguration validates the loaded configuration. Values the engine
// clamps (deposit above 100%, negative growth and so on) are accepted.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateInvestment(&config.Investment); err != nil {
		return fmt.Errorf("%w: investment: %w", ErrValidation, err)
	}

	if config.GlobalSalary != nil && config.GlobalSalary.IsNegative() {
		return fmt.Errorf("%w: global salary cannot be negative", ErrValidation)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("%w: scenario %d: %w", ErrValidation, i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrValidation, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !scenario.Strategy.Valid() {
		return fmt.Errorf("unknown growth strategy %q", scenario.Strategy)
	}
	if err := ip.ValidateInvestment(&scenario.Investment); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	return nil
}

// ValidateInvestment checks a single snapshot for values the calculator cannot interpret.
func (ip *InputParser) ValidateInvestment(inv *domain.Investment) error {
	if !inv.State.Valid() {
		return fmt.Errorf("unknown jurisdiction %q", inv.State)
	}
	if !inv.DepreciationLevel.Valid() {
		return fmt.Errorf("unknown depreciation level %q", inv.DepreciationLevel)
	}
	if inv.LoanTermYears <= 0 {
		return fmt.Errorf("loan term must be positive")
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"stamp duty", inv.StampDuty},
		{"buyer's agent fee", inv.BuyersAgentFee},
		{"solicitor fee", inv.SolicitorFee},
		{"building and pest fee", inv.BuildingPestFee},
		{"other upfront costs", inv.OtherUpfront},
		{"council rates", inv.HoldingExpenses.CouncilRates},
		{"insurance", inv.HoldingExpenses.Insurance},
		{"repairs and maintenance", inv.HoldingExpenses.RepairsMaintenance},
		{"land tax", inv.HoldingExpenses.LandTax},
		{"body corporate", inv.HoldingExpenses.BodyCorp},
		{"other expenses", inv.HoldingExpenses.OtherExpenses},
		{"weekly rent", inv.WeeklyRent},
		{"management fee", inv.ManagementFeePercent},
		{"manual depreciation", inv.ManualDepreciation},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", a.name)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := DefaultInvestment()

	melbourne := base
	melbourne.PropertyAddress = "Melbourne, VIC"
	melbourne.State = domain.VIC
	melbourne.WeeklyRent = decimal.NewFromInt(650)
	melbourne.StampDuty = calculation.EstimateStampDuty(melbourne.State, melbourne.PurchasePrice)

	brisbane := base
	brisbane.PropertyAddress = "Brisbane, QLD"
	brisbane.PurchasePrice = decimal.NewFromInt(650000)
	brisbane.WeeklyRent = decimal.NewFromInt(680)
	brisbane.StampDuty = calculation.EstimateStampDuty(brisbane.State, brisbane.PurchasePrice)

	salary := decimal.NewFromInt(120000)
	return &domain.Configuration{
		Investment: base,
		Scenarios: []domain.Scenario{
			{Name: "Scenario 1", Strategy: domain.StrategyGrowth, Investment: melbourne},
			{Name: "Scenario 2", Strategy: domain.StrategyYield, Investment: brisbane},
		},
		GlobalSalary: &salary,
	}
}
