// Package cmd provides the CLI commands for amcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"amcost/core/engine"
	"amcost/internal/config"
	"amcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "amcost",
	Short: "Compare additive vs conventional manufacturing costs",
	Long: `amcost is an educational cost comparison calculator.

It models conventional and additive manufacturing cost curves along two
independent axes (production volume and geometric complexity) and derives
the break-even point for each from closed-form equations.

Examples:
  amcost compare
  amcost compare --setup-cost 350 --additive-unit-cost 18
  amcost compare --scenario bracket.hcl --format svg --output chart.svg
  amcost breakeven --variable-cost 10 --additive-unit-cost 10`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.amcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(breakevenCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("amcost version " + engine.Version)
	},
}
