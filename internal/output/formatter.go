package output

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-simulator/internal/calculation"
	"github.com/rpgo/savings-simulator/internal/domain"
)

// Report bundles everything the formatters render: the plan inputs, the
// deterministic projection, and optionally a Monte Carlo result and a
// sensitivity grid.
type Report struct {
	Plan          domain.PlanParameters `json:"plan"`
	Assets        []domain.Asset        `json:"assets"`
	TaxTreatment  domain.TaxTreatment   `json:"tax_treatment"`
	TaxRate       decimal.Decimal       `json:"tax_rate"`
	YearsToInvest int                   `json:"years_to_invest"`
	RealReturn    float64               `json:"weighted_real_return"`

	Projection calculation.ProjectionResult  `json:"projection"`
	Simulation *calculation.SimulationResult `json:"simulation,omitempty"`
	Grid       *calculation.SavingsGrid      `json:"sensitivity_grid,omitempty"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter identifiers.
func FormatterNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}

// DefaultExtension maps a formatter name to its file extension.
func DefaultExtension(name string) string {
	switch name {
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file with the given extension, returning the filename.
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("savings_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
