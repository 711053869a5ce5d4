// SPDX-License-Identifier: MPL-2.0

package report

import "github.com/charmbracelet/lipgloss"

// Shared rendering styles, derived from the same palette the CLI layer
// uses for its status output.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	moduleNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)
