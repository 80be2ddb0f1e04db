// Package main is the entry point for the amcost CLI.
package main

import (
	"os"

	"amcost/cmd/cli/cmd"
	"amcost/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
