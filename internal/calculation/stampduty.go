package calculation

import (
	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// STAMP DUTY ASSUMPTIONS:
//
// Schedules approximate general (non first-home-buyer) transfer duty on an
// investment purchase. They are policy data and are kept as published in the
// calculator; concessions, foreign-purchaser surcharges and off-the-plan
// rules are not modelled. TAS, ACT and NT use a flat approximation.

// DutyBracket is one tier of a stamp duty schedule. When the price exceeds
// Above, duty = Base + (price - Above) * Rate. Flat tiers apply Rate to the
// whole price instead.
type DutyBracket struct {
	Above decimal.Decimal
	Base  decimal.Decimal
	Rate  decimal.Decimal
	Flat  bool
}

// Duty evaluates the bracket at price.
func (b DutyBracket) Duty(price decimal.Decimal) decimal.Decimal {
	if b.Flat {
		return price.Mul(b.Rate)
	}
	return b.Base.Add(price.Sub(b.Above).Mul(b.Rate))
}

func tier(above, base int64, rate float64) DutyBracket {
	return DutyBracket{Above: decimal.NewFromInt(above), Base: decimal.NewFromInt(base), Rate: decimal.NewFromFloat(rate)}
}

func flat(above int64, rate float64) DutyBracket {
	return DutyBracket{Above: decimal.NewFromInt(above), Rate: decimal.NewFromFloat(rate), Flat: true}
}

// DutySchedules holds the ordered (highest first) schedule per jurisdiction.
var DutySchedules = map[domain.Jurisdiction][]DutyBracket{
	domain.NSW: {
		tier(1089000, 44095, 0.055),
		tier(327000, 9835, 0.045),
		flat(0, 0.035),
	},
	domain.VIC: {
		tier(2000000, 110000, 0.065),
		flat(960000, 0.055),
		flat(0, 0.05),
	},
	domain.QLD: {
		tier(1000000, 38025, 0.0575),
		tier(540000, 17325, 0.045),
		flat(0, 0.035),
	},
	domain.WA: {
		tier(725000, 28453, 0.0515),
		flat(0, 0.04),
	},
	domain.SA: {
		tier(250000, 8955, 0.05),
		flat(0, 0.04),
	},
}

// DefaultDutyRate applies to jurisdictions without a schedule.
var DefaultDutyRate = decimal.NewFromFloat(0.045)

// EstimateStampDuty returns the duty payable on price in jurisdiction j,
// rounded to the nearest dollar. Non-positive prices attract no duty.
func EstimateStampDuty(j domain.Jurisdiction, price decimal.Decimal) decimal.Decimal {
	price = decimal.Max(price, decimal.Zero)
	if !price.IsPositive() {
		return decimal.Zero
	}

	schedule, ok := DutySchedules[j]
	if !ok {
		return price.Mul(DefaultDutyRate).Round(0)
	}

	for _, b := range schedule {
		if price.GreaterThan(b.Above) {
			return b.Duty(price).Round(0)
		}
	}
	return decimal.Zero
}
