// Package styles provides colour themes and styling for the picker TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the picker.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("86"),  // Cyan
		Foreground: lipgloss.Color("252"), // Light gray
		Muted:      lipgloss.Color("241"), // Medium gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the prompt header.
	Title lipgloss.Style

	// Note style for the annotation being matched.
	Note lipgloss.Style

	// Normal style for unselected candidates.
	Normal lipgloss.Style

	// Selected style for the highlighted candidate.
	Selected lipgloss.Style

	// Help style for the keybinding footer.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Note: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
