package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/propcalc/investment-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../../test/testdata/example_config.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestStampDutyCommand(t *testing.T) {
	out, err := execute(t, "stamp-duty", "--state", "qld", "--price", "850000")
	require.NoError(t, err)
	assert.Equal(t, "Stamp duty (QLD) on $850,000: $31,275\n", out)

	_, err = execute(t, "stamp-duty", "--state", "XX")
	assert.Error(t, err)

	_, err = execute(t, "stamp-duty", "--price", "lots")
	assert.Error(t, err)
}

func TestTaxCommand(t *testing.T) {
	out, err := execute(t, "tax", "--income", "120000")
	require.NoError(t, err)
	assert.Contains(t, out, "Income tax:     $26,788.00")
	assert.Contains(t, out, "Marginal rate:  30.00%")
}

func TestCalculateCommand(t *testing.T) {
	out, err := execute(t, "calculate", "-c", exampleConfig, "-f", "summary")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Brisbane Yield,yield,QLD,650000.00,22275.00,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Melbourne Growth,growth,VIC,850000.00,42500.00,"), lines[2])
}

func TestCalculateCommand_WritesReports(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "calculate", "-c", exampleConfig, "-f", "all", "-o", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Report written to"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCalculateCommand_Errors(t *testing.T) {
	_, err := execute(t, "calculate", "-c", exampleConfig, "-f", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, err = execute(t, "calculate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "loud", "tax")
	assert.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "-c", exampleConfig, "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO COMPARISON")

	single := filepath.Join(t.TempDir(), "single.yaml")
	require.NoError(t, os.WriteFile(single, []byte("investment:\n  purchase_price: 700000\n"), 0644))
	_, err = execute(t, "compare", "-c", single)
	assert.ErrorIs(t, err, errTooFewScenarios)
}

func TestExampleConfigCommand(t *testing.T) {
	out, err := execute(t, "example-config")
	require.NoError(t, err)
	assert.Contains(t, out, "scenarios:")

	file := filepath.Join(t.TempDir(), "example.yaml")
	_, err = execute(t, "example-config", "-o", file)
	require.NoError(t, err)

	_, err = execute(t, "calculate", "-c", file, "-f", "json")
	assert.NoError(t, err)
}
