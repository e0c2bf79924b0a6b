package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color used in the CLI;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: folder names, namespaces, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for skipped components.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue is the banner background.
	ColorBlue = lipgloss.Color("27")

	// ColorWhite is the banner foreground.
	ColorWhite = lipgloss.Color("15")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree descriptions and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (folder names, namespaces, components).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles skipped-component notices.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleBanner styles the command banner block.
	StyleBanner = lipgloss.NewStyle().
			Background(ColorBlue).
			Foreground(ColorWhite).
			Padding(1, 2)
)

// Styles groups the styles used by the file tree renderer.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
}

// GetStyles returns the tree styles.
func GetStyles() Styles {
	return Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
	}
}

// FormatBanner renders a block banner around the given lines.
func FormatBanner(lines ...string) string {
	return StyleBanner.Render(strings.Join(lines, "\n"))
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatList renders items as a comma-separated list of styled nouns.
func FormatList(items []string) string {
	styled := make([]string, len(items))
	for i, item := range items {
		styled[i] = StyleNoun.Render(item)
	}
	return strings.Join(styled, ", ")
}
