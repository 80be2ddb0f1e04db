// Package cmd - breakeven command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"amcost/core/ui"
)

// breakevenCmd prints just the two break-even values
var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Solve the break-even points without rendering curves",
	Long: `Solve both break-even equations for the current cost assumptions.

Examples:
  amcost breakeven
  amcost breakeven --setup-cost 350 --additive-unit-cost 18
  amcost breakeven --scenario bracket.hcl`,
	RunE: runBreakeven,
}

func init() {
	addParameterFlags(breakevenCmd)
}

func runBreakeven(cmd *cobra.Command, args []string) error {
	params, err := resolveParameters(cmd)
	if err != nil {
		return err
	}

	w := ui.NewWriter(os.Stdout, false)

	if v, ok := params.Volume().BreakEvenVolume(); ok {
		w.Println("Volume break-even: %.2f units", v)
	} else {
		w.Println("Volume break-even: not defined with current cost assumptions.")
	}

	if c, ok := params.Complexity().BreakEvenComplexity(); ok {
		w.Println("Complexity break-even: %.2f complexity units", c)
	} else {
		w.Println("Complexity break-even: not defined with current cost assumptions.")
	}

	return nil
}
