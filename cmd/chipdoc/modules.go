// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chipdoc-cli/internal/config"
	"chipdoc-cli/internal/extract"
	"chipdoc-cli/internal/issue"
	"chipdoc-cli/internal/report"
)

var (
	modulesJSONPath string
	modulesFormat   string
	modulesOutput   string
	modulesFilter   string

	// modulesCmd lists every module in a description tree.
	modulesCmd = &cobra.Command{
		Use:   "modules",
		Short: "List all modules in a description tree",
		Long: `List every module found in a module description tree.

References ($ref) are resolved before the walk, so modules split across
files show up exactly like inline ones. Each module is listed once per
hierarchical path; duplicates reached through a second reference to the
same sub-tree are dropped.

Examples:
  chipdoc modules --json soc_top.json
  chipdoc modules --json soc_top.json --format tree
  chipdoc modules --json soc_top.json --format json -o modules.json
  chipdoc modules --json soc_top.json --filter-module alu`,
		RunE: runModules,
	}
)

func init() {
	modulesCmd.Flags().StringVar(&modulesJSONPath, "json", "", "module description JSON file (required)")
	modulesCmd.Flags().StringVar(&modulesFormat, "format", "", "output format: table, tree or json (default from config)")
	modulesCmd.Flags().StringVarP(&modulesOutput, "output", "o", "", "output file path (default: stdout)")
	modulesCmd.Flags().StringVar(&modulesFilter, "filter-module", "", "only show modules with this bare name")
	_ = modulesCmd.MarkFlagRequired("json")
}

func runModules(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	format, err := pickFormat(modulesFormat, config.FormatTable, config.FormatTree, config.FormatJSON)
	if err != nil {
		cmd.SilenceUsage = false
		return err
	}

	doc, err := resolveDocument(modulesJSONPath)
	if err != nil {
		return err
	}

	records := extract.Modules(doc)
	if modulesFilter != "" {
		records = filterModuleRecords(records, modulesFilter)
	}
	if len(records) == 0 {
		if modulesFilter != "" {
			fmt.Fprintf(os.Stderr, "%s No modules found with name: %s\n", errorIcon, modulesFilter)
		} else {
			renderIssueCard(issue.NoModulesFoundId)
		}
		return &ExitError{Code: 1}
	}

	sink, err := report.NewSink(modulesOutput)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	defer sink.Close()

	switch format {
	case config.FormatTree:
		err = report.ModulesTree(sink.Writer(), records)
	case config.FormatJSON:
		err = report.JSON(sink.Writer(), records)
	default:
		err = report.ModulesTable(sink.Writer(), records)
	}
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// filterModuleRecords keeps records whose bare name matches.
func filterModuleRecords(records []extract.ModuleRecord, name string) []extract.ModuleRecord {
	var kept []extract.ModuleRecord
	for _, rec := range records {
		if rec.Name == name {
			kept = append(kept, rec)
		}
	}
	return kept
}

// pickFormat validates a --format value against the formats a command
// supports, falling back to the configured default when the flag is unset.
func pickFormat(flagValue string, allowed ...config.OutputFormat) (config.OutputFormat, error) {
	format := config.OutputFormat(flagValue)
	if format == "" {
		format = appConfig.Output.Format
		if format == "" {
			format = config.FormatTable
		}
		// A configured default that this command does not support (e.g.
		// "summary" for modules) silently falls back to table.
		if !formatAllowed(format, allowed) {
			format = config.FormatTable
		}
		return format, nil
	}
	if !formatAllowed(format, allowed) {
		return "", &config.InvalidOutputFormatError{Value: format}
	}
	return format, nil
}

func formatAllowed(format config.OutputFormat, allowed []config.OutputFormat) bool {
	for _, a := range allowed {
		if format == a {
			return true
		}
	}
	return false
}
