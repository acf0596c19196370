package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"maplint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "maplint",
	Short: "Lints unit-returning map calls on Option and Result values",
	Long:  `maplint finds option.map(f) and result.map(f) calls where f returns unit and suggests the equivalent if-let statement`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
