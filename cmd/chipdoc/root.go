// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for chipdoc.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chipdoc-cli/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// appConfig is the effective configuration, loaded by initRootConfig.
	appConfig = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chipdoc",
		Short: "Inspect hardware module description trees",
		Long: TitleStyle.Render("chipdoc") + SubtitleStyle.Render(" - Inspect hardware module description trees") + `

chipdoc works on hierarchical hardware module descriptions stored as
JSON, where sub-modules may live in separate files linked via $ref.
It inlines the references, flattens the hierarchy, and lets you list
modules, list test cases, and validate documents against a schema.

` + SubtitleStyle.Render("Examples:") + `
  chipdoc modules --json soc_top.json            List all modules
  chipdoc modules --json soc_top.json --format tree
  chipdoc testcases --json soc_top.json          List all test cases
  chipdoc validate --schema module_schema.json --json soc_top.json
  chipdoc resolve --json soc_top.json            Print the inlined tree
  chipdoc docs cpu/alu --json soc_top.json       Render a module's docs`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chipdoc/config.cue)")

	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(testcasesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file, if one exists.
func initRootConfig() {
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Config problems are surfaced but never fatal: defaults still work.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if cfg != nil {
		appConfig = cfg
		if cfg.UI.Verbose {
			verbose = true
		}
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// glamourStyle maps the configured color scheme onto a glamour style name.
func glamourStyle() string {
	switch appConfig.UI.ColorScheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}
