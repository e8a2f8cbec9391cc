package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: paths, template names, package names.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "done" step status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" step status.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for the "failed" step status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, template names, package names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and file descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status constants.
const (
	StatusDone    = "done"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a step status.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minStepColumnWidth keeps step statuses aligned.
const minStepColumnWidth = 40

// FormatStepLine renders a pipeline step with a right-aligned, color-coded status.
func FormatStepLine(step, status string) string {
	padding := minStepColumnWidth - len(step)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("s:") + StyleNoun.Render(step) + strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
