package cli

import "github.com/charmbracelet/lipgloss"

// Styles for command output.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")) // Yellow
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")) // Medium gray
)
