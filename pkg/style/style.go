// Package style renders status output for the terminal.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Status labels for tracked files
const (
	LabelClean    = "clean"
	LabelModified = "MODIFIED"
	LabelMissing  = "MISSING"
)

var (
	cleanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	neutralStyle  = lipgloss.NewStyle()
)

// statusStyle returns the lipgloss style for a status label
func statusStyle(label string) lipgloss.Style {
	switch label {
	case LabelClean:
		return cleanStyle
	case LabelModified:
		return modifiedStyle
	case LabelMissing:
		return missingStyle
	default:
		return neutralStyle
	}
}

// RenderFileStatus renders one status row for a tracked file
func RenderFileStatus(label, relativePath string) string {
	padded := fmt.Sprintf("%-8s", label)
	return fmt.Sprintf("  [%s] %s", statusStyle(label).Render(padded), relativePath)
}

// RenderSummary renders the aggregate line below the file rows
func RenderSummary(clean, modified, missing int) string {
	return fmt.Sprintf("Summary: %d clean, %d modified, %d missing", clean, modified, missing)
}
