// Package output - Markdown report
package output

import (
	"fmt"
	"io"

	"amcost/core/engine"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct {
	opts Options
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, result *engine.Result) error {
	p := result.Parameters

	fmt.Fprintf(w, "# Manufacturing Cost Comparison\n\n")

	fmt.Fprintf(w, "| Assumption | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Conventional setup cost | %s |\n", money(p.SetupCost))
	fmt.Fprintf(w, "| Conventional variable cost | %s /unit |\n", money(p.VariableCost))
	fmt.Fprintf(w, "| Additive unit cost | %s /unit |\n", money(p.AdditiveUnitCost))
	fmt.Fprintf(w, "| Complexity cost | %s × c^%g |\n", money(p.ComplexityCoefficient), p.ComplexityExponent)
	fmt.Fprintf(w, "| Additive piece cost | %s /piece |\n", money(p.AdditivePieceCost))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "## Break-even\n\n")
	if result.VolumeBreakEven != nil {
		fmt.Fprintf(w, "- **Volume**: %.2f units\n", *result.VolumeBreakEven)
	} else {
		fmt.Fprintf(w, "- **Volume**: not defined with current cost assumptions\n")
	}
	if result.ComplexityBreakEven != nil {
		fmt.Fprintf(w, "- **Complexity**: %.2f complexity units\n", *result.ComplexityBreakEven)
	} else {
		fmt.Fprintf(w, "- **Complexity**: not defined with current cost assumptions\n")
	}

	fmt.Fprintf(w, "\nSampled %d points per curve over volume [%g, %g] and complexity [%g, %g].\n",
		p.Points, p.MinVolume, p.MaxVolume, p.MinComplexity, p.MaxComplexity)
	fmt.Fprintf(w, "\n_Generated by amcost %s at %s_\n", result.Metadata.Version, result.Metadata.Timestamp)
	return nil
}
