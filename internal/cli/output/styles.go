package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text-mode rendering.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Emphasis lipgloss.Style
}

func newStyles(noColor bool) *Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return &Styles{Title: plain, Subtle: plain, Emphasis: plain}
	}
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtle:   lipgloss.NewStyle().Faint(true),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}
