package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-simulator/internal/calculation"
	"github.com/rpgo/savings-simulator/internal/config"
	"github.com/rpgo/savings-simulator/internal/domain"
	"github.com/rpgo/savings-simulator/internal/logging"
	"github.com/rpgo/savings-simulator/internal/output"
)

var (
	inputPath  string
	formatName string
	toFile     bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "savings-sim",
	Short: "Project retirement savings and simulate outcome distributions",
	Long: `savings-sim projects retirement savings from a plan file describing
current savings, recurring contributions, a weighted asset portfolio, and an
inflation assumption. It computes deterministic future values under Roth,
Qualified, and Non-Qualified tax treatments, and estimates the distribution
of outcomes with Monte Carlo simulation.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to the plan YAML file (required)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format: "+strings.Join(output.FormatterNames(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&toFile, "output-file", "o", false, "write the report to a timestamped file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sensitivityCmd)
}

// loadEngine parses and validates the input file and wires up an engine
// with a zerolog-backed logger.
func loadEngine() (*domain.Configuration, *calculation.ProjectionEngine, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputPath)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewProjectionEngine(cfg.RetirementPlan())
	engine.SetLogger(logging.New(debug))
	return cfg, engine, nil
}

// buildReport assembles the formatter input from a validated configuration
// and its engine.
func buildReport(cfg *domain.Configuration, engine *calculation.ProjectionEngine, projection calculation.ProjectionResult) *output.Report {
	return &output.Report{
		Plan:          cfg.Plan,
		Assets:        cfg.Portfolio.Assets,
		TaxTreatment:  cfg.TaxTreatment,
		TaxRate:       cfg.TaxRate,
		YearsToInvest: engine.Plan().YearsToInvest(),
		RealReturn:    engine.WeightedRealReturn(),
		Projection:    projection,
	}
}

// render formats the report and writes it to stdout, or to a timestamped
// file when --output-file is set.
func render(report *output.Report) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)", formatName, strings.Join(output.FormatterNames(), ", "))
	}

	if toFile {
		filename, err := output.WriteFormatted(formatter, report, output.DefaultExtension(formatter.Name()))
		if err != nil {
			return fmt.Errorf("writing report failed: %w", err)
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
