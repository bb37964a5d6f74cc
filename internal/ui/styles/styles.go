package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/connorleisz/project-identity/internal/colors"
)

// Color constants used throughout the UI
var (
	// Primary colors
	Accent    = lipgloss.Color("205") // Pink/Magenta - primary accent
	AccentAlt = lipgloss.Color("141") // Purple - secondary accent
	Success   = lipgloss.Color("118") // Green - success states
	Warning   = lipgloss.Color("214") // Orange - warnings
	Error     = lipgloss.Color("196") // Red - errors
	Info      = lipgloss.Color("75")  // Blue - informational

	// Neutral colors
	TextNormal   = lipgloss.Color("252") // Light gray - normal text
	TextMuted    = lipgloss.Color("250") // Lighter gray - descriptions
	TextFaint    = lipgloss.Color("244") // Gray - faint/disabled text
	TextOnAccent = lipgloss.Color("0")   // Black - text on accent background

	BorderActive = lipgloss.Color("205")
)

// Common style components
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentAlt)

	Normal = lipgloss.NewStyle().
		Foreground(TextNormal)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Faint = lipgloss.NewStyle().
		Faint(true)

	Selected = lipgloss.NewStyle().
			Background(Accent).
			Foreground(TextOnAccent)

	// Status indicators
	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning)

	StatusError = lipgloss.NewStyle().
			Foreground(Error)

	// Keys in help text
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("226"))
)

// Panel is the rounded box the prompt steps render in
func Panel(width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)
	if width > 0 {
		s = s.Width(width)
	}
	return s
}

// Swatch renders text on a background of the given hex color, with a
// foreground picked for contrast. Invalid colors render the text unstyled.
func Swatch(hex, text string) string {
	if !colors.IsValidHex(hex) {
		return text
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colors.Contrast(hex))).
		Render(text)
}

// TitleBarPreview mimics the editor title bar the settings will produce
func TitleBarPreview(hex, title string, width int) string {
	if !colors.IsValidHex(hex) {
		return ""
	}
	s := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1)
	if width > 0 {
		s = s.Width(width)
	}
	return s.Render(title)
}
