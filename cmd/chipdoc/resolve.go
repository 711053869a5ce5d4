// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"chipdoc-cli/internal/report"
)

var (
	resolveJSONPath string
	resolveOutput   string

	// resolveCmd prints the fully inlined document.
	resolveCmd = &cobra.Command{
		Use:   "resolve",
		Short: "Print a description tree with all $ref links inlined",
		Long: `Resolve every relative $ref in a module description tree and print
the resulting document as JSON. Useful for seeing exactly what the
extractors and the validator operate on, and for debugging reference
chains that span several directories.

Examples:
  chipdoc resolve --json soc_top.json
  chipdoc resolve --json soc_top.json -o resolved.json`,
		RunE: runResolve,
	}
)

func init() {
	resolveCmd.Flags().StringVar(&resolveJSONPath, "json", "", "module description JSON file (required)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "output file path (default: stdout)")
	_ = resolveCmd.MarkFlagRequired("json")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	doc, err := resolveDocument(resolveJSONPath)
	if err != nil {
		return err
	}

	sink, err := report.NewSink(resolveOutput)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	defer sink.Close()

	if err := report.JSON(sink.Writer(), doc); err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}
