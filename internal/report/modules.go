// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"chipdoc-cli/internal/extract"
)

// ModulesTable renders module records as a bordered table.
func ModulesTable(w io.Writer, records []extract.ModuleRecord) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("MODULE PATH", "FILE", "DOC", "TEST", "SUBMODULES")

	for _, rec := range records {
		t.Row(rec.FullPath, rec.Filepath, rec.Docpath,
			yesNo(rec.HasTest), yesNo(rec.HasSubmodules))
	}

	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d module(s)\n", len(records))
	return err
}

// ModulesTree renders module records as an indented hierarchy. Records
// arrive in pre-order, so every parent path is seen before its children.
func ModulesTree(w io.Writer, records []extract.ModuleRecord) error {
	nodes := make(map[string]*tree.Tree, len(records))
	var roots []*tree.Tree

	for _, rec := range records {
		label := moduleNameStyle.Render(rec.Name)
		if rec.HasTest {
			label += dimStyle.Render(" [test]")
		}
		node := tree.Root(label)
		nodes[rec.FullPath] = node
		if rec.Parent == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[rec.Parent]; ok {
			parent.Child(node)
		} else {
			roots = append(roots, node)
		}
	}

	for _, root := range roots {
		if _, err := fmt.Fprintln(w, root); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d module(s)\n", len(records))
	return err
}

// yesNo renders a boolean table cell.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// truncate shortens long cell content, keeping tables readable.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
