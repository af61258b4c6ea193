package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/propcalc/investment-calculator/internal/calculation"
	"github.com/propcalc/investment-calculator/internal/config"
	"github.com/propcalc/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	base := config.DefaultInvestment()
	scenarios := []domain.Scenario{
		{Name: "Yield", Strategy: domain.StrategyYield, Investment: base},
		{Name: "Growth", Strategy: domain.StrategyGrowth, Investment: base},
	}
	cmp, err := calculation.NewCalculationEngine().Compare(context.Background(), scenarios)
	require.NoError(t, err)
	return cmp
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Recommended: Growth")
	// sorted by name
	assert.Less(t, strings.Index(content, "Growth:"), strings.Index(content, "Yield:"))
	assert.Contains(t, content, "Loan=$680,000")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "PROPERTY INVESTMENT PROJECTION")
	assert.Contains(t, content, "SCENARIO 1: Yield")
	assert.Contains(t, content, "SCENARIO 2: Growth")
	assert.Contains(t, content, "$31,275.00")
	assert.Contains(t, content, "$680,000.00")
	assert.Regexp(t, `Mortgage Repayments: +-\$51,5\d\d\.\d\d \(\$4,29\d\.\d\d/mo\)`, content)
	assert.Contains(t, content, "SCENARIO COMPARISON")
	assert.Contains(t, content, "Highest equity (year 30):      Growth")
	// Growth out-rents Yield every year after year 0
	assert.Contains(t, content, "do not cross within 30 years")
}

func TestConsoleVerboseFormatter_SingleScenarioAssumptions(t *testing.T) {
	inv := config.DefaultInvestment()
	result := calculation.NewCalculationEngine().Calculate(inv)
	cmp := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioResult{{Name: domain.DefaultScenarioName, Input: inv, Result: *result}},
	}

	out, err := ConsoleVerboseFormatter{}.Format(cmp)
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Capital growth: 6.0% annually")
	assert.NotContains(t, content, "SCENARIO COMPARISON")
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "expected header + 2 rows")
	assert.True(t, strings.HasPrefix(lines[1], "Growth,growth,QLD,850000.00,31275.00,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Yield,yield,QLD,"), lines[2])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 1+2*(domain.ProjectionYears+1))
	assert.True(t, strings.HasPrefix(lines[1], "Growth,0,850000.00,680000.00,170000.00,750.00,37500.00,"), lines[1])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	var decoded struct {
		Scenarios []struct {
			Name   string `json:"name"`
			Result struct {
				LoanAmount  string                       `json:"loan_amount"`
				LVR         string                       `json:"lvr"`
				GrossYield  string                       `json:"gross_yield"`
				Projections []map[string]json.RawMessage `json:"projections"`
			} `json:"result"`
		} `json:"scenarios"`
		BestEquity string `json:"best_equity_scenario"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "Yield", decoded.Scenarios[0].Name)
	assert.Equal(t, "Growth", decoded.BestEquity)

	result := decoded.Scenarios[0].Result
	assert.Equal(t, "680000", result.LoanAmount)
	assert.Equal(t, "80", result.LVR)
	assert.Equal(t, "4.4118", result.GrossYield)
	require.Len(t, result.Projections, domain.ProjectionYears+1)

	y0 := result.Projections[0]
	assert.JSONEq(t, `"850000"`, string(y0["property_value"]))
	assert.JSONEq(t, `"680000"`, string(y0["loan_balance"]))
	assert.JSONEq(t, `"37500"`, string(y0["gross_rent"]))
	assert.JSONEq(t, `"10200"`, string(y0["depreciation"]))

	// every money figure in every year is at most cents
	for _, yp := range result.Projections {
		for field, raw := range yp {
			if field == "year" {
				continue
			}
			var v string
			require.NoError(t, json.Unmarshal(raw, &v), field)
			if i := strings.IndexByte(v, '.'); i >= 0 {
				assert.LessOrEqual(t, len(v)-i-1, 2, "%s = %s", field, v)
			}
		}
	}

	for _, line := range strings.Split(string(out), "\n") {
		assert.Less(t, len(line), 80, "line too long: %.60s", line)
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
	}
	cmp := buildTestComparison(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(cmp)
		require.NoError(t, err, tc.name)

		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			line := firstLine(string(out)) + "\n"
			require.NoError(t, os.WriteFile(goldenPath, []byte(line), 0644), tc.name)
		}
		data, err := os.ReadFile(goldenPath)
		require.NoError(t, err, tc.name)
		assert.True(t, strings.HasPrefix(string(out), strings.TrimSpace(string(data))),
			"%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"text":         "console",
		"Console":      "console",
		"summary":      "csv",
		"yearly":       "detailed-csv",
		"csv-detailed": "detailed-csv",
		"lite":         "console-lite",
		"json":         "json",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, alias)
		assert.Equal(t, want, f.Name(), alias)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := LookupFormatter("definitely-not-a-format")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "csv", FileExtension("summary"))
	assert.Equal(t, "csv", FileExtension("detailed-csv"))
	assert.Equal(t, "json", FileExtension("json"))
	assert.Equal(t, "txt", FileExtension("console"))
}
