package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/propcalc/investment-calculator/internal/calculation"
	"github.com/propcalc/investment-calculator/internal/config"
	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/propcalc/investment-calculator/internal/output"
	"github.com/propcalc/investment-calculator/pkg/money"
	"github.com/spf13/cobra"
)

var errTooFewScenarios = errors.New("compare needs at least two scenarios")

func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if a.log != nil {
		engine.SetLogger(a.log)
	}
	return engine
}

func (a *app) newCalculateCmd() *cobra.Command {
	var configFile, format, outDir string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project every scenario in a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			return a.run(cmd, cfg.Runs(), format, outDir)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", envOr(envFormat, "console"), formatHelp())
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write the report to this directory instead of stdout")
	return cmd
}

func (a *app) newCompareCmd() *cobra.Command {
	var configFile, format, outDir string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the scenarios in a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			if len(cfg.Scenarios) < 2 {
				return fmt.Errorf("%w: %s has %d", errTooFewScenarios, configFile, len(cfg.Scenarios))
			}
			return a.run(cmd, cfg.Scenarios, format, outDir)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", envOr(envFormat, "console"), formatHelp())
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write the report to this directory instead of stdout")
	return cmd
}

func (a *app) run(cmd *cobra.Command, scenarios []domain.Scenario, format, outDir string) error {
	// fail on a bad format before doing any work
	if output.NormalizeFormatName(format) != "all" {
		if _, err := output.LookupFormatter(format); err != nil {
			return err
		}
	}

	results, err := a.engine().Compare(cmd.Context(), scenarios)
	if err != nil {
		return err
	}

	if outDir == "" {
		if output.NormalizeFormatName(format) == "all" {
			format = "console"
		}
		return output.Render(cmd.OutOrStdout(), results, format)
	}

	paths, err := output.GenerateReport(results, format, outDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
	}
	return nil
}

func (a *app) newStampDutyCmd() *cobra.Command {
	var state, price string

	cmd := &cobra.Command{
		Use:   "stamp-duty",
		Short: "Estimate transfer duty for a purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := domain.ParseJurisdiction(state)
			if err != nil {
				return err
			}
			p, err := money.NewMoneyFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price: %w", err)
			}
			duty := calculation.EstimateStampDuty(j, p.Decimal)
			fmt.Fprintf(cmd.OutOrStdout(), "Stamp duty (%s) on %s: %s\n", j, p.FormatWhole(), money.NewMoneyFromDecimal(duty).FormatWhole())
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", string(domain.QLD), "jurisdiction ("+jurisdictionList()+")")
	cmd.Flags().StringVar(&price, "price", "850000", "purchase price")
	return cmd
}

func (a *app) newTaxCmd() *cobra.Command {
	var income string

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Show income tax and marginal rate for a salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := money.NewMoneyFromString(income)
			if err != nil {
				return fmt.Errorf("invalid income: %w", err)
			}
			tc := calculation.NewIncomeTaxCalculator2025()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Taxable income: %s\n", m.FormatWhole())
			fmt.Fprintf(out, "Income tax:     %s\n", money.NewMoneyFromDecimal(tc.TotalTax(m.Decimal)).Format())
			fmt.Fprintf(out, "Marginal rate:  %s\n", output.FormatRate(tc.MarginalRate(m.Decimal)))
			return nil
		},
	}
	cmd.Flags().StringVar(&income, "income", "120000", "annual taxable income")
	return cmd
}

func (a *app) newExampleConfigCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Print or save an example configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if file == "" {
				return output.WriteConfiguration(cmd.OutOrStdout(), cfg)
			}
			if err := output.SaveConfiguration(cfg, file); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "output", "o", "", "file to write instead of stdout")
	return cmd
}

func formatHelp() string {
	return fmt.Sprintf("report format: %s, all (aliases: %s)",
		strings.Join(output.AvailableFormatterNames(), ", "),
		strings.Join(output.AvailableFormatAliases(), ", "))
}

func jurisdictionList() string {
	names := make([]string, len(domain.Jurisdictions))
	for i, j := range domain.Jurisdictions {
		names[i] = string(j)
	}
	return strings.Join(names, ", ")
}
