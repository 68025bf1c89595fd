package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "incomesim",
	Short: "Compare lifetime office and freelance income trajectories",
	Long: `incomesim projects two long-horizon personal income trajectories — a
salaried office worker and a self-employed freelance engineer — over an age
range, and compares the cumulative net totals.

Parameters come from a named preset, optionally overridden by a YAML file.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
