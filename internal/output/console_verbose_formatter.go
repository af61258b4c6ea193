package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/propcalc/investment-calculator/pkg/money"
)

// milestoneYears are the projection years shown in the console table.
var milestoneYears = []int{0, 1, 2, 3, 4, 5, 10, 15, 20, 25, 30}

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "PROPERTY INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := DefaultAssumptions
	if len(results.Scenarios) == 1 {
		assumptions = GenerateAssumptions(&results.Scenarios[0].Input)
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		writeScenario(&buf, i+1, &scenario)
	}

	if len(results.Scenarios) > 1 {
		writeComparison(&buf, results)
	}

	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, n int, sc *domain.ScenarioResult) {
	inv := &sc.Input
	r := &sc.Result
	fy := r.FirstYearCashflow

	fmt.Fprintf(buf, "SCENARIO %d: %s\n", n, sc.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	if inv.PropertyAddress != "" {
		fmt.Fprintf(buf, "Property:  %s (%s)\n", inv.PropertyAddress, inv.State)
	} else {
		fmt.Fprintf(buf, "Property:  %s\n", inv.State)
	}
	if sc.Strategy != "" {
		fmt.Fprintf(buf, "Strategy:  %s (capital %s%%, rent %s%%)\n", sc.Strategy,
			inv.CapitalGrowthPercent.StringFixed(1), inv.RentalGrowthPercent.StringFixed(1))
	}
	loanType := "Principal & Interest"
	if inv.IsInterestOnly {
		loanType = fmt.Sprintf("Interest Only (%d yrs)", inv.InterestOnlyYears)
	}
	fmt.Fprintf(buf, "Loan:      %d yrs @ %s%%, %s\n", inv.LoanTermYears, inv.InterestRate.StringFixed(2), loanType)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PURCHASE:")
	fmt.Fprintln(buf, "----------------------------------------")
	fmt.Fprintf(buf, "  Purchase Price:          %s\n", FormatCurrency(inv.PurchasePrice))
	fmt.Fprintf(buf, "  Deposit:                 %s\n", FormatCurrency(r.DepositAmount))
	fmt.Fprintf(buf, "  Loan Amount:             %s\n", FormatCurrency(r.LoanAmount))
	fmt.Fprintf(buf, "  LVR:                     %s\n", FormatPercentage(r.LVR))
	fmt.Fprintf(buf, "  Stamp Duty:              %s\n", FormatCurrency(r.StampDuty))
	fmt.Fprintf(buf, "  Total Upfront Costs:     %s\n", FormatCurrency(r.UpfrontCostsTotal))
	fmt.Fprintf(buf, "  TOTAL CASH REQUIRED:     %s\n", FormatCurrency(r.TotalCashRequired))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "FIRST YEAR CASHFLOW:")
	fmt.Fprintln(buf, "----------------------------------------")
	fmt.Fprintf(buf, "  Potential Gross Rent:    %s\n", FormatCurrency(fy.PotentialGrossRent))
	fmt.Fprintf(buf, "  Vacancy Loss:           -%s\n", FormatCurrency(fy.VacancyLoss))
	fmt.Fprintf(buf, "  Effective Gross Rent:    %s\n", FormatCurrency(fy.EffectiveGrossRent))
	fmt.Fprintf(buf, "  Management Fees:        -%s\n", FormatCurrency(fy.ManagementFees))
	fmt.Fprintf(buf, "  Other Expenses:         -%s\n", FormatCurrency(fy.OtherOperatingExpenses))
	fmt.Fprintf(buf, "  Mortgage Repayments:    -%s (%s/mo)\n", FormatCurrency(fy.MortgageRepayments),
		money.NewMoneyFromDecimal(fy.MortgageRepayments).Monthly().Format())
	fmt.Fprintf(buf, "  NET CASHFLOW:            %s\n", FormatCurrency(fy.NetCashflow))
	fmt.Fprintf(buf, "  Depreciation Claimed:    %s\n", FormatCurrency(fy.Depreciation))
	fmt.Fprintf(buf, "  Tax Refund (%s):     %s\n", FormatRate(r.MarginalTaxRate), FormatCurrency(fy.TaxRefund))
	fmt.Fprintf(buf, "  AFTER-TAX CASHFLOW:      %s (%s/wk)\n", FormatCurrency(fy.AfterTaxCashflow),
		money.NewMoneyFromDecimal(fy.AfterTaxCashflow).Weekly().FormatWhole())
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Gross Yield:             %s\n", FormatPercentage(r.GrossYield))
	fmt.Fprintf(buf, "  Net Yield:               %s\n", FormatPercentage(r.NetYield))
	fmt.Fprintf(buf, "  Cashflow Positive:       %s\n", crossoverText(r.PositiveCashflowYear))
	fmt.Fprintf(buf, "  After-Tax Positive:      %s\n", crossoverText(r.PositiveCashflowAfterTaxYear))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PROJECTION:")
	fmt.Fprintf(buf, "%-5s %15s %15s %15s %13s %13s %13s\n", "Year", "Value", "Loan", "Equity", "Rent", "Net CF", "After Tax")
	fmt.Fprintln(buf, strings.Repeat("-", 95))
	for _, y := range milestoneYears {
		yp := r.YearAt(y)
		if yp == nil {
			continue
		}
		fmt.Fprintf(buf, "%-5d %15s %15s %15s %13s %13s %13s\n",
			yp.Year,
			FormatWholeCurrency(yp.PropertyValue),
			FormatWholeCurrency(yp.LoanBalance),
			FormatWholeCurrency(yp.Equity),
			FormatWholeCurrency(yp.GrossRent),
			FormatWholeCurrency(yp.NetCashflow),
			FormatWholeCurrency(yp.AfterTaxCashflow),
		)
	}
	fmt.Fprintln(buf)
}

func writeComparison(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "SCENARIO COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "Highest equity (year %d):      %s\n", domain.ProjectionYears, results.BestEquityScenario)
	fmt.Fprintf(buf, "Best first-year cashflow:     %s\n", results.BestCashflowScenario)

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintf(buf, "Equity lead over runner-up:   %s (%s)\n", FormatCurrency(rec.EquityLead), FormatPercentage(rec.PercentageChange))
	}

	if be := results.BreakEven; be != nil {
		fmt.Fprintf(buf, "Cumulative cashflow break-even: %s and %s cross in year %d, month %d (%s cumulative)\n",
			be.ScenarioA, be.ScenarioB, be.YearIndex, be.Month, FormatCurrency(be.CumulativeAmount))
	} else if len(results.Scenarios) >= 2 {
		fmt.Fprintf(buf, "Cumulative cashflow break-even: %s and %s do not cross within %d years\n",
			results.Scenarios[0].Name, results.Scenarios[1].Name, domain.ProjectionYears)
	}
	fmt.Fprintln(buf)
}

func crossoverText(year *int) string {
	if year == nil {
		return fmt.Sprintf("not within %d years", domain.ProjectionYears)
	}
	return fmt.Sprintf("year %d", *year)
}
