// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chipdoc-cli/internal/cmdcheck"
	"chipdoc-cli/internal/config"
	"chipdoc-cli/internal/extract"
	"chipdoc-cli/internal/issue"
	"chipdoc-cli/internal/report"
)

var (
	testcasesJSONPath  string
	testcasesFormat    string
	testcasesOutput    string
	testcasesFilter    string
	testcasesCheckCmds bool

	// testcasesCmd lists every test case defined in a description tree.
	testcasesCmd = &cobra.Command{
		Use:   "testcases",
		Short: "List all test cases in a description tree",
		Long: `List every test case defined by modules in a description tree,
including test cases of modules pulled in via $ref.

Each module is visited once per bare name; a test case without a name is
listed as test_<index> from its position in the module's test_case list.

Examples:
  chipdoc testcases --json soc_top.json
  chipdoc testcases --json soc_top.json --format summary
  chipdoc testcases --json soc_top.json --filter-module alu
  chipdoc testcases --json soc_top.json --check-cmds`,
		RunE: runTestcases,
	}
)

func init() {
	testcasesCmd.Flags().StringVar(&testcasesJSONPath, "json", "", "module description JSON file (required)")
	testcasesCmd.Flags().StringVar(&testcasesFormat, "format", "", "output format: table, json or summary (default from config)")
	testcasesCmd.Flags().StringVarP(&testcasesOutput, "output", "o", "", "output file path (default: stdout)")
	testcasesCmd.Flags().StringVar(&testcasesFilter, "filter-module", "", "only show test cases for a specific module")
	testcasesCmd.Flags().BoolVar(&testcasesCheckCmds, "check-cmds", false, "parse each run_cmd as shell syntax and report problems")
	_ = testcasesCmd.MarkFlagRequired("json")
}

func runTestcases(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	format, err := pickFormat(testcasesFormat, config.FormatTable, config.FormatJSON, config.FormatSummary)
	if err != nil {
		cmd.SilenceUsage = false
		return err
	}

	doc, err := resolveDocument(testcasesJSONPath)
	if err != nil {
		return err
	}

	records := extract.TestCases(doc)
	if testcasesFilter != "" {
		records = filterTestCaseRecords(records, testcasesFilter)
	}
	if len(records) == 0 {
		if testcasesFilter != "" {
			fmt.Fprintf(os.Stderr, "%s No test cases found for module: %s\n", errorIcon, testcasesFilter)
		} else {
			renderIssueCard(issue.NoTestCasesFoundId)
		}
		return &ExitError{Code: 1}
	}

	sink, err := report.NewSink(testcasesOutput)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	defer sink.Close()

	switch format {
	case config.FormatJSON:
		err = report.JSON(sink.Writer(), records)
	case config.FormatSummary:
		err = report.TestCasesSummary(sink.Writer(), records)
	default:
		err = report.TestCasesTable(sink.Writer(), records)
	}
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if testcasesCheckCmds {
		return reportRunCmdProblems(records)
	}
	return nil
}

// filterTestCaseRecords keeps records owned by the named module.
func filterTestCaseRecords(records []extract.TestCaseRecord, module string) []extract.TestCaseRecord {
	var kept []extract.TestCaseRecord
	for _, rec := range records {
		if rec.Module == module {
			kept = append(kept, rec)
		}
	}
	return kept
}

// reportRunCmdProblems lints every run command and prints failures to
// stderr. Any problem makes the whole invocation fail.
func reportRunCmdProblems(records []extract.TestCaseRecord) error {
	problems := cmdcheck.Check(records)
	if len(problems) == 0 {
		fmt.Fprintf(os.Stderr, "%s All run commands parse as valid shell\n", successIcon)
		return nil
	}

	fmt.Fprintf(os.Stderr, "\n%s %d run command problem(s):\n", errorIcon, len(problems))
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "  - %s\n", p.Error())
	}
	return &ExitError{Code: 1}
}
