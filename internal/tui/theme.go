package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the dashboard uses.
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

// Styles groups every style the views use.
type Styles struct {
	Title      lipgloss.Style
	Panel      lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style
	Row        lipgloss.Style
	OverBudget lipgloss.Style
	Bar        lipgloss.Style
	Muted      lipgloss.Style
}

// DefaultStyles returns the dashboard theme.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorMauve),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSky).Padding(0, 1),
		MenuItem:   lipgloss.NewStyle().Foreground(colorText),
		MenuActive: lipgloss.NewStyle().Foreground(colorYellow).Background(colorBlue).Bold(true),
		Row:        lipgloss.NewStyle().Foreground(colorText),
		OverBudget: lipgloss.NewStyle().Foreground(colorRed).Bold(true),
		Bar:        lipgloss.NewStyle().Foreground(colorPeach),
		Muted:      lipgloss.NewStyle().Foreground(colorOverlay1),
	}
}

// PlainStyles renders without any decoration; tests use it to compare text.
func PlainStyles() Styles {
	p := lipgloss.NewStyle()
	return Styles{Title: p, Panel: p, MenuItem: p, MenuActive: p, Row: p, OverBudget: p, Bar: p, Muted: p}
}
