package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Jurisdiction identifies the Australian state or territory the property is purchased in.
type Jurisdiction string

const (
	NSW Jurisdiction = "NSW"
	VIC Jurisdiction = "VIC"
	QLD Jurisdiction = "QLD"
	SA  Jurisdiction = "SA"
	WA  Jurisdiction = "WA"
	TAS Jurisdiction = "TAS"
	ACT Jurisdiction = "ACT"
	NT  Jurisdiction = "NT"
)

// Jurisdictions lists every supported jurisdiction in display order.
var Jurisdictions = []Jurisdiction{NSW, VIC, QLD, SA, WA, TAS, ACT, NT}

// ParseJurisdiction resolves a case-insensitive jurisdiction code.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	code := Jurisdiction(strings.ToUpper(strings.TrimSpace(s)))
	if code.Valid() {
		return code, nil
	}
	return "", fmt.Errorf("unknown jurisdiction %q", s)
}

// Valid reports whether j is one of the eight supported codes.
func (j Jurisdiction) Valid() bool {
	for _, known := range Jurisdictions {
		if j == known {
			return true
		}
	}
	return false
}

// UnmarshalText accepts lower or mixed case codes. Unknown codes are kept
// verbatim so validation can report them.
func (j *Jurisdiction) UnmarshalText(text []byte) error {
	*j = Jurisdiction(strings.ToUpper(strings.TrimSpace(string(text))))
	return nil
}

// DepreciationLevel selects how the year-one depreciation deduction is estimated.
type DepreciationLevel string

const (
	DepreciationNew    DepreciationLevel = "new"
	DepreciationRecent DepreciationLevel = "recent"
	DepreciationOld    DepreciationLevel = "old"
	DepreciationManual DepreciationLevel = "manual"
)

// DepreciationLevels lists the supported strategies.
var DepreciationLevels = []DepreciationLevel{DepreciationNew, DepreciationRecent, DepreciationOld, DepreciationManual}

// Valid reports whether d is a supported strategy.
func (d DepreciationLevel) Valid() bool {
	for _, known := range DepreciationLevels {
		if d == known {
			return true
		}
	}
	return false
}

// Label returns the human readable strategy name.
func (d DepreciationLevel) Label() string {
	switch d {
	case DepreciationNew:
		return "New Build (High)"
	case DepreciationRecent:
		return "Recent / Renovated (Med)"
	case DepreciationOld:
		return "Older Existing (Low)"
	case DepreciationManual:
		return "Manual Input"
	default:
		return string(d)
	}
}

func (d *DepreciationLevel) UnmarshalText(text []byte) error {
	*d = DepreciationLevel(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// Investment is the immutable input snapshot for one projection run.
// Percent fields are whole percentages (6.5 means 6.5%).
type Investment struct {
	// Property
	PropertyAddress string          `yaml:"property_address,omitempty" json:"property_address,omitempty"`
	PurchasePrice   decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	State           Jurisdiction    `yaml:"state" json:"state"`

	// Finance
	DepositPercent    decimal.Decimal `yaml:"deposit_percent" json:"deposit_percent"`
	InterestRate      decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	LoanTermYears     int             `yaml:"loan_term_years" json:"loan_term_years"`
	IsInterestOnly    bool            `yaml:"is_interest_only" json:"is_interest_only"`
	InterestOnlyYears int             `yaml:"interest_only_years" json:"interest_only_years"`

	// Upfront costs
	StampDuty       decimal.Decimal `yaml:"stamp_duty" json:"stamp_duty"`
	BuyersAgentFee  decimal.Decimal `yaml:"buyers_agent_fee" json:"buyers_agent_fee"`
	SolicitorFee    decimal.Decimal `yaml:"solicitor_fee" json:"solicitor_fee"`
	BuildingPestFee decimal.Decimal `yaml:"building_pest_fee" json:"building_pest_fee"`
	OtherUpfront    decimal.Decimal `yaml:"other_upfront" json:"other_upfront"`

	// Income and operating expenses
	WeeklyRent           decimal.Decimal `yaml:"weekly_rent" json:"weekly_rent"`
	ManagementFeePercent decimal.Decimal `yaml:"management_fee_percent" json:"management_fee_percent"`
	VacancyWeeks         decimal.Decimal `yaml:"vacancy_weeks" json:"vacancy_weeks"`
	HoldingExpenses      HoldingExpenses `yaml:",inline" json:"holding_expenses"`

	// Taxation and depreciation
	AnnualSalary       decimal.Decimal   `yaml:"annual_salary" json:"annual_salary"`
	DepreciationLevel  DepreciationLevel `yaml:"depreciation_level" json:"depreciation_level"`
	ManualDepreciation decimal.Decimal   `yaml:"manual_depreciation" json:"manual_depreciation"`

	// Growth assumptions
	CapitalGrowthPercent decimal.Decimal `yaml:"capital_growth_percent" json:"capital_growth_percent"`
	RentalGrowthPercent  decimal.Decimal `yaml:"rental_growth_percent" json:"rental_growth_percent"`
	InflationPercent     decimal.Decimal `yaml:"inflation_percent" json:"inflation_percent"`
}

// HoldingExpenses are the annual operating costs that inflate independently each year.
type HoldingExpenses struct {
	CouncilRates       decimal.Decimal `yaml:"council_rates" json:"council_rates"`
	Insurance          decimal.Decimal `yaml:"insurance" json:"insurance"`
	RepairsMaintenance decimal.Decimal `yaml:"repairs_maintenance" json:"repairs_maintenance"`
	LandTax            decimal.Decimal `yaml:"land_tax" json:"land_tax"`
	BodyCorp           decimal.Decimal `yaml:"body_corp" json:"body_corp"`
	OtherExpenses      decimal.Decimal `yaml:"other_expenses" json:"other_expenses"`
}

// Total sums every expense line.
func (h HoldingExpenses) Total() decimal.Decimal {
	return h.CouncilRates.Add(h.Insurance).Add(h.RepairsMaintenance).
		Add(h.LandTax).Add(h.BodyCorp).Add(h.OtherExpenses)
}

// Inflate returns a copy with every line multiplied by factor.
func (h HoldingExpenses) Inflate(factor decimal.Decimal) HoldingExpenses {
	return HoldingExpenses{
		CouncilRates:       h.CouncilRates.Mul(factor),
		Insurance:          h.Insurance.Mul(factor),
		RepairsMaintenance: h.RepairsMaintenance.Mul(factor),
		LandTax:            h.LandTax.Mul(factor),
		BodyCorp:           h.BodyCorp.Mul(factor),
		OtherExpenses:      h.OtherExpenses.Mul(factor),
	}
}

// UpfrontCosts sums stamp duty and the additive purchase fees.
func (inv *Investment) UpfrontCosts() decimal.Decimal {
	return inv.StampDuty.Add(inv.BuyersAgentFee).Add(inv.SolicitorFee).
		Add(inv.BuildingPestFee).Add(inv.OtherUpfront)
}
