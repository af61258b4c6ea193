package output

import (
	"fmt"
	"io"
	"os"

	"github.com/propcalc/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats results with the named formatter and writes them to w.
func Render(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes results in the named format to a timestamped file in
// dir and returns its path. The format "all" writes the console report and
// the detailed CSV.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = []string{"console", "detailed-csv"}
	}

	var written []string
	for _, name := range names {
		f, err := LookupFormatter(name)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(f, results, dir, FileExtension(name))
		if err != nil {
			return written, fmt.Errorf("write %s report: %w", f.Name(), err)
		}
		written = append(written, path)
	}
	return written, nil
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// WriteConfiguration writes config as YAML to w.
func WriteConfiguration(w io.Writer, config *domain.Configuration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return err
	}
	return enc.Close()
}
