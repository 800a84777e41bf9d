// Package styles provides reusable lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used by the CLI commands.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// Default returns the built-in dark theme.
func Default() Theme {
	var (
		text   = lipgloss.Color("#ffffff")
		muted  = lipgloss.Color("#909090")
		accent = lipgloss.Color("#4ade80")
		red    = lipgloss.Color("#f87171")
		border = lipgloss.Color("#333333")
	)

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle:  lipgloss.NewStyle().Foreground(muted),
		Normal:    lipgloss.NewStyle().Foreground(text),
		Subtle:    lipgloss.NewStyle().Foreground(muted),
		Highlight: lipgloss.NewStyle().Foreground(accent),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(red),
		Success:   lipgloss.NewStyle().Foreground(accent),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2),
		BoxHeader: lipgloss.NewStyle().Bold(true).Foreground(text),
	}
}
