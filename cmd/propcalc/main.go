package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	envLogLevel = "PROPCALC_LOG_LEVEL"
	envFormat   = "PROPCALC_FORMAT"
)

type app struct {
	logLevel string
	log      *zap.SugaredLogger
}

func main() {
	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "propcalc",
		Short: "Australian residential property investment calculator",
		Long: `propcalc projects the cashflow, tax effect and equity of a leveraged
residential property purchase over 30 years, and compares scenarios side by side.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", envOr(envLogLevel, "warn"), "log level (debug, info, warn, error)")

	root.AddCommand(
		a.newCalculateCmd(),
		a.newCompareCmd(),
		a.newStampDutyCmd(),
		a.newTaxCmd(),
		a.newExampleConfigCmd(),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
