// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"chipdoc-cli/internal/extract"
)

// maxRunCmdWidth keeps the run command column from swallowing the table.
const maxRunCmdWidth = 40

// TestCasesTable renders test case records as a bordered table.
func TestCasesTable(w io.Writer, records []extract.TestCaseRecord) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("MODULE", "TEST NAME", "RUN COMMAND", "WAVE")

	for _, rec := range records {
		wave := "-"
		if rec.HasWave() {
			wave = "✓"
		}
		t.Row(rec.Module, rec.TestName, truncate(rec.RunCmd, maxRunCmdWidth), wave)
	}

	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d test case(s)\n", len(records))
	return err
}

// TestCasesSummary renders test cases grouped per module, with totals.
func TestCasesSummary(w io.Writer, records []extract.TestCaseRecord) error {
	byModule := make(map[string][]extract.TestCaseRecord)
	for _, rec := range records {
		byModule[rec.Module] = append(byModule[rec.Module], rec)
	}

	modules := make([]string, 0, len(byModule))
	for name := range byModule {
		modules = append(modules, name)
	}
	sort.Strings(modules)

	if _, err := fmt.Fprintln(w, headerStyle.Render("Test Case Summary")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, name := range modules {
		cases := byModule[name]
		fmt.Fprintf(w, "%s\n", moduleNameStyle.Render("Module: "+name))
		fmt.Fprintf(w, "  Total test cases: %d\n", len(cases))
		for _, rec := range cases {
			fmt.Fprintf(w, "    - %s\n", rec.TestName)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total modules with tests: %d\n", len(byModule))
	_, err := fmt.Fprintf(w, "Total test cases: %d\n", len(records))
	return err
}
