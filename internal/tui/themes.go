// Package tui implements the interactive dashboard: tabbed views over the
// user's finances plus the affordability advisor input box.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the palette for one display mode.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Income    lipgloss.Color
	Expense   lipgloss.Color
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Box       lipgloss.Style
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	primary := lipgloss.Color("#8B5CF6")
	return Theme{
		Name:    "dark",
		Primary: primary,
		Income:  lipgloss.Color("#10B981"),
		Expense: lipgloss.Color("#F43F5E"),
		Text:    lipgloss.Color("#E2E8F0"),
		Subtle:  lipgloss.Color("#94A3B8"),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primary),
		TabIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Padding(0, 2),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(1, 2),
	}
}

// LightTheme mirrors DarkTheme for bright terminals.
func LightTheme() Theme {
	primary := lipgloss.Color("#7C3AED")
	return Theme{
		Name:    "light",
		Primary: primary,
		Income:  lipgloss.Color("#059669"),
		Expense: lipgloss.Color("#E11D48"),
		Text:    lipgloss.Color("#1E293B"),
		Subtle:  lipgloss.Color("#64748B"),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primary),
		TabIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Padding(0, 2),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#CBD5E1")).
			Padding(1, 2),
	}
}
