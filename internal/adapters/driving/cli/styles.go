package cli

import "github.com/charmbracelet/lipgloss"

// Report styling. Colours degrade to plain text on dumb terminals.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// header renders a bold section header.
func header(s string) string {
	return headerStyle.Render(s)
}

// passMark renders the success marker.
func passMark() string {
	return passStyle.Render("✓")
}

// failMark renders the failure marker.
func failMark() string {
	return failStyle.Render("✗")
}
