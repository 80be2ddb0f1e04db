// Package cmd - compare command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"amcost/adapters/scenario"
	"amcost/core/engine"
	"amcost/core/model"
	"amcost/core/output"
	"amcost/core/ui"
	"amcost/internal/config"
	"amcost/internal/logging"
)

var (
	scenarioFile  string
	outputFormat  string
	outputPath    string
	noChart       bool
	noColor       bool
	includeCurves bool

	flagSetupCost             float64
	flagVariableCost          float64
	flagAdditiveUnitCost      float64
	flagComplexityCoefficient float64
	flagComplexityExponent    float64
	flagAdditivePieceCost     float64
	flagMinVolume             float64
	flagMaxVolume             float64
	flagMinComplexity         float64
	flagMaxComplexity         float64
	flagPoints                int
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare both cost curves and report break-even points",
	Long: `Sample both cost comparisons and render a report.

Cost assumptions come from the config file defaults, overlaid by an
optional scenario file, overlaid by any explicitly set flags.

Examples:
  amcost compare
  amcost compare --setup-cost 350 --points 200
  amcost compare --scenario bracket.hcl
  amcost compare --format markdown --output report.md
  amcost compare --format svg --output chart.svg`,
	RunE: runCompare,
}

func init() {
	addParameterFlags(compareCmd)
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown, svg)")
	compareCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	compareCmd.Flags().BoolVar(&noChart, "no-chart", false, "omit ASCII charts from the terminal report")
	compareCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	compareCmd.Flags().BoolVar(&includeCurves, "curves", false, "embed the full sampled curves in JSON output")
}

// addParameterFlags registers the shared cost assumption flags
func addParameterFlags(cmd *cobra.Command) {
	defaults := model.Default()
	cmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "HCL scenario file with cost assumptions")
	cmd.Flags().Float64Var(&flagSetupCost, "setup-cost", defaults.SetupCost, "conventional setup/tooling cost")
	cmd.Flags().Float64Var(&flagVariableCost, "variable-cost", defaults.VariableCost, "conventional variable cost per unit")
	cmd.Flags().Float64Var(&flagAdditiveUnitCost, "additive-unit-cost", defaults.AdditiveUnitCost, "additive cost per unit")
	cmd.Flags().Float64Var(&flagComplexityCoefficient, "complexity-coefficient", defaults.ComplexityCoefficient, "conventional complexity coefficient")
	cmd.Flags().Float64Var(&flagComplexityExponent, "complexity-exponent", defaults.ComplexityExponent, "conventional complexity exponent")
	cmd.Flags().Float64Var(&flagAdditivePieceCost, "additive-piece-cost", defaults.AdditivePieceCost, "additive cost per piece")
	cmd.Flags().Float64Var(&flagMinVolume, "min-volume", defaults.MinVolume, "min units for the volume axis")
	cmd.Flags().Float64Var(&flagMaxVolume, "max-volume", defaults.MaxVolume, "max units for the volume axis")
	cmd.Flags().Float64Var(&flagMinComplexity, "min-complexity", defaults.MinComplexity, "min score for the complexity axis")
	cmd.Flags().Float64Var(&flagMaxComplexity, "max-complexity", defaults.MaxComplexity, "max score for the complexity axis")
	cmd.Flags().IntVar(&flagPoints, "points", defaults.Points, "number of points per curve")
}

// resolveParameters layers config defaults, the scenario file, and any
// explicitly set flags, in that order
func resolveParameters(cmd *cobra.Command) (model.Parameters, error) {
	params := config.Get().Parameters

	if scenarioFile != "" {
		s, err := scenario.Load(scenarioFile, params)
		if err != nil {
			return params, err
		}
		logging.Info("loaded scenario", zap.String("name", s.Name), zap.String("path", scenarioFile))
		params = s.Parameters
	}

	overrides := map[string]func(){
		"setup-cost":             func() { params.SetupCost = flagSetupCost },
		"variable-cost":          func() { params.VariableCost = flagVariableCost },
		"additive-unit-cost":     func() { params.AdditiveUnitCost = flagAdditiveUnitCost },
		"complexity-coefficient": func() { params.ComplexityCoefficient = flagComplexityCoefficient },
		"complexity-exponent":    func() { params.ComplexityExponent = flagComplexityExponent },
		"additive-piece-cost":    func() { params.AdditivePieceCost = flagAdditivePieceCost },
		"min-volume":             func() { params.MinVolume = flagMinVolume },
		"max-volume":             func() { params.MaxVolume = flagMaxVolume },
		"min-complexity":         func() { params.MinComplexity = flagMinComplexity },
		"max-complexity":         func() { params.MaxComplexity = flagMaxComplexity },
		"points":                 func() { params.Points = flagPoints },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return params, params.Validate()
}

func runCompare(cmd *cobra.Command, args []string) error {
	params, err := resolveParameters(cmd)
	if err != nil {
		return err
	}

	result, err := engine.New().Compare(params)
	if err != nil {
		return err
	}

	cfg := config.Get()
	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}

	formatter, err := output.New(format, output.Options{
		NoColor:       noColor || cfg.Output.NoColor || outputPath != "",
		NoChart:       noChart,
		IncludeCurves: includeCurves,
		ChartWidth:    cfg.Output.ChartWidth,
		ChartHeight:   cfg.Output.ChartHeight,
	})
	if err != nil {
		return err
	}

	if outputPath == "" {
		return formatter.Render(os.Stdout, result)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := formatter.Render(file, result); err != nil {
		return err
	}

	ui.NewWriter(os.Stderr, noColor).Success("Saved report: %s", outputPath)
	return nil
}
