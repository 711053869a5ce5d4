// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"chipdoc-cli/internal/config"
)

var (
	// configCmd groups configuration utilities.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	// configShowCmd prints the effective configuration.
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}

	// configPathCmd prints where the config file is looked up.
	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE:  runConfigPath,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	stdout := cmd.OutOrStdout()

	fmt.Fprintln(stdout, TitleStyle.Render("Effective configuration"))
	fmt.Fprintln(stdout)

	schemaDisplay := appConfig.DefaultSchema
	if schemaDisplay == "" {
		schemaDisplay = VerboseStyle.Render("(not set)")
	} else {
		schemaDisplay = PathStyle.Render(schemaDisplay)
	}
	fmt.Fprintf(stdout, "  default_schema:  %s\n", schemaDisplay)
	fmt.Fprintf(stdout, "  output.format:   %s\n", appConfig.Output.Format)
	fmt.Fprintf(stdout, "  ui.color_scheme: %s\n", appConfig.UI.ColorScheme)
	fmt.Fprintf(stdout, "  ui.verbose:      %t\n", appConfig.UI.Verbose)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cfgFile)
		return nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(),
		filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
