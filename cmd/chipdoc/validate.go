// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chipdoc-cli/internal/issue"
	"chipdoc-cli/internal/schema"
)

var (
	validateSchemaPath    string
	validateJSONPath      string
	validateNoResolveRefs bool

	// validateCmd validates a description tree against a JSON Schema.
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate a description tree against a JSON Schema",
		Long: `Validate a module description JSON file against a schema.

By default the document's $ref links are resolved before validation, so
the schema sees the fully inlined tree. With --no-resolve-refs the raw
document is validated instead and any $ref nodes are checked as the
literal mappings they are.

Examples:
  chipdoc validate --schema module_schema.json --json soc_top.json
  chipdoc validate --json soc_top.json                 (schema from config)
  chipdoc validate --schema s.json --json x.json --no-resolve-refs`,
		RunE: runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "schema JSON file (default from config)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "module description JSON file (required)")
	validateCmd.Flags().BoolVar(&validateNoResolveRefs, "no-resolve-refs", false, "validate the raw document without resolving $ref")
	_ = validateCmd.MarkFlagRequired("json")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	schemaPath := validateSchemaPath
	if schemaPath == "" {
		schemaPath = appConfig.DefaultSchema
	}
	if schemaPath == "" {
		cmd.SilenceUsage = false
		return fmt.Errorf("no schema given: pass --schema or set default_schema in the config file")
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "Validating: %s\n", PathStyle.Render(validateJSONPath))
	fmt.Fprintf(stdout, "Using schema: %s\n\n", PathStyle.Render(schemaPath))

	outcome := schema.Validate(schemaPath, validateJSONPath, !validateNoResolveRefs)
	if outcome.Valid {
		fmt.Fprintf(stdout, "%s Validation PASSED\n", successIcon)
		return nil
	}

	fmt.Fprintf(stdout, "%s Validation FAILED\n", errorIcon)
	switch outcome.Category {
	case schema.CategorySchemaViolation:
		fmt.Fprintf(stdout, "  At: %s\n", PathStyle.Render(outcome.Location))
		fmt.Fprintf(stdout, "  Error: %s\n", outcome.Message)
	default:
		fmt.Fprintf(stdout, "  Error (%s): %s\n", outcome.Category, outcome.Message)
	}

	if outcome.Category == schema.CategoryFileNotFound {
		renderValidateNotFoundCard(schemaPath, outcome.Message)
	}

	return &ExitError{Code: 1}
}

// renderValidateNotFoundCard picks the help card for a missing file: the
// schema itself, the document, or a reference target inside it.
func renderValidateNotFoundCard(schemaPath, message string) {
	if containsPath(message, schemaPath) {
		renderIssueCard(issue.SchemaNotFoundId)
		return
	}
	if containsPath(message, validateJSONPath) {
		renderIssueCard(issue.DocumentNotFoundId)
		return
	}
	renderIssueCard(issue.ReferenceNotFoundId)
}

// containsPath reports whether a failure message names the given path.
func containsPath(message, path string) bool {
	return path != "" && strings.Contains(message, path)
}
