// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"chipdoc-cli/internal/extract"
	"chipdoc-cli/internal/issue"
)

var (
	docsJSONPath string

	// docsCmd renders a module's documentation file to the terminal.
	docsCmd = &cobra.Command{
		Use:   "docs <module-path>",
		Short: "Render a module's documentation",
		Long: `Render the markdown documentation of one module to the terminal.

The module is addressed by its full hierarchical path (e.g. cpu/alu);
a bare name also works when it is unambiguous. The module's docpath is
taken relative to the root JSON file's directory.

Examples:
  chipdoc docs cpu --json soc_top.json
  chipdoc docs cpu/alu --json soc_top.json`,
		Args: cobra.ExactArgs(1),
		RunE: runDocs,
	}
)

func init() {
	docsCmd.Flags().StringVar(&docsJSONPath, "json", "", "module description JSON file (required)")
	_ = docsCmd.MarkFlagRequired("json")
}

func runDocs(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	doc, err := resolveDocument(docsJSONPath)
	if err != nil {
		return err
	}

	records := extract.Modules(doc)
	if len(records) == 0 {
		renderIssueCard(issue.NoModulesFoundId)
		return &ExitError{Code: 1}
	}

	rec, err := findModule(records, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorIcon, err)
		return &ExitError{Code: 1, Err: err}
	}

	docPath := rec.Docpath
	if !filepath.IsAbs(docPath) {
		docPath = filepath.Join(filepath.Dir(docsJSONPath), docPath)
	}
	content, err := os.ReadFile(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s Cannot read documentation for %s: %v\n",
			errorIcon, PathStyle.Render(rec.FullPath), err)
		return &ExitError{Code: 1, Err: err}
	}

	rendered, err := glamour.Render(string(content), glamourStyle())
	if err != nil {
		// Unrenderable markdown still has readable source.
		rendered = string(content)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// findModule locates a record by full path, falling back to bare name
// when that is unambiguous.
func findModule(records []extract.ModuleRecord, query string) (extract.ModuleRecord, error) {
	var byName []extract.ModuleRecord
	for _, rec := range records {
		if rec.FullPath == query {
			return rec, nil
		}
		if rec.Name == query {
			byName = append(byName, rec)
		}
	}
	switch len(byName) {
	case 0:
		return extract.ModuleRecord{}, fmt.Errorf("module not found: %s", query)
	case 1:
		return byName[0], nil
	default:
		paths := make([]string, len(byName))
		for i, rec := range byName {
			paths[i] = rec.FullPath
		}
		return extract.ModuleRecord{}, fmt.Errorf(
			"module name %q is ambiguous, use a full path: %v", query, paths)
	}
}
