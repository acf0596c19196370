package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"maplint/internal/diag"
	"maplint/internal/diagfmt"
	"maplint/internal/driver"
	"maplint/internal/project"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the lint rules over the built-in example program",
	Long:  `Build the bundled example program, run every lint rule over it and render the diagnostics. Output respects maplint.toml when one is found above the working directory.`,
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().String("format", "", "output format (pretty|json|short); overrides maplint.toml")
	demoCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	demoCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	demoCmd.Flags().Bool("suggest", true, "include fix suggestions in output")
	demoCmd.Flags().Bool("disk-cache", false, "enable the persistent lint result cache")
	demoCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := project.LoadFromDir(".")
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		if format, err = cmd.Flags().GetString("format"); err != nil {
			return err
		}
	}
	colorMode := cfg.Output.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		if colorMode, err = cmd.Root().PersistentFlags().GetString("color"); err != nil {
			return err
		}
	}
	maxDiagnostics := cfg.MaxDiagnostics
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		if maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
			return err
		}
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}

	opts := driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Disabled:       cfg.DisabledCodes(),
	}
	if useCache {
		cache, err := driver.OpenDiskCache("maplint")
		if err != nil {
			return fmt.Errorf("failed to open lint cache: %w", err)
		}
		opts.Cache = cache
	}

	unit := driver.DemoUnit()
	bag, err := driver.LintUnit(cmd.Context(), unit, opts)
	if err != nil {
		return err
	}

	pathMode := parsePathMode(cfg.Output.PathMode)
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	colorize := shouldColorize(colorMode)
	out := cmd.OutOrStdout()

	switch format {
	case "pretty":
		color.NoColor = !colorize
		diagfmt.Pretty(out, bag, unit.Files, diagfmt.PrettyOpts{
			Color:     colorize,
			PathMode:  pathMode,
			ShowNotes: withNotes || cfg.Output.ShowNotes,
			ShowFixes: suggest && cfg.Output.ShowFixes,
		})
	case "json":
		return diagfmt.JSON(out, bag, unit.Files, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes || cfg.Output.ShowNotes,
			IncludeFixes:     suggest && cfg.Output.ShowFixes,
			IncludePreviews:  true,
		})
	case "short":
		if s := diag.FormatShortDiagnostics(bag.Items(), unit.Files, withNotes); s != "" {
			fmt.Fprintln(out, s)
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", format)
	}
	return nil
}

func parsePathMode(mode string) diagfmt.PathMode {
	switch mode {
	case "absolute":
		return diagfmt.PathModeAbsolute
	case "relative":
		return diagfmt.PathModeRelative
	case "basename":
		return diagfmt.PathModeBasename
	default:
		return diagfmt.PathModeAuto
	}
}

func shouldColorize(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
