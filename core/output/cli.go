// Package output - Terminal report
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"amcost/core/engine"
	"amcost/core/ui"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct {
	opts Options
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// money rounds a cost figure for display
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

// Render writes the report
func (f *CLIFormatter) Render(out io.Writer, result *engine.Result) error {
	w := ui.NewWriter(out, f.opts.NoColor)
	p := result.Parameters

	w.Header("Manufacturing Cost Comparison")

	w.Println("Cost assumptions:")
	w.Println("  Conventional setup cost:    %s", money(p.SetupCost))
	w.Println("  Conventional variable cost: %s /unit", money(p.VariableCost))
	w.Println("  Additive unit cost:         %s /unit", money(p.AdditiveUnitCost))
	w.Println("  Complexity cost:            %s × c^%g", money(p.ComplexityCoefficient), p.ComplexityExponent)
	w.Println("  Additive piece cost:        %s /piece", money(p.AdditivePieceCost))
	w.Println("")

	if result.VolumeBreakEven != nil {
		w.Success("Volume break-even: %.2f units", *result.VolumeBreakEven)
	} else {
		w.Warning("Volume break-even: not defined with current cost assumptions.")
	}
	if result.ComplexityBreakEven != nil {
		w.Success("Complexity break-even: %.2f complexity units", *result.ComplexityBreakEven)
	} else {
		w.Warning("Complexity break-even: not defined with current cost assumptions.")
	}

	if !f.opts.NoChart {
		w.Header("Cost per Unit vs Volume")
		w.Print("%s", asciiChart(chartSpec{
			title:     "Conventional vs additive as volume scales",
			xLabel:    "units manufactured",
			yLabel:    "cost per unit",
			curve:     result.VolumeCurve,
			breakEven: result.VolumeBreakEven,
			width:     f.opts.ChartWidth,
			height:    f.opts.ChartHeight,
		}))

		w.Header("Cost per Piece vs Geometric Complexity")
		w.Print("%s", asciiChart(chartSpec{
			title:     "Conventional vs additive as complexity grows",
			xLabel:    "geometric complexity",
			yLabel:    "cost per piece",
			curve:     result.ComplexityCurve,
			breakEven: result.ComplexityBreakEven,
			width:     f.opts.ChartWidth,
			height:    f.opts.ChartHeight,
		}))
	}

	w.Println("")
	w.Println("%d samples per curve · computed in %s · amcost %s",
		p.Points, result.Metadata.Duration, result.Metadata.Version)
	return nil
}
