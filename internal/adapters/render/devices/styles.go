package devices

import "github.com/charmbracelet/lipgloss"

type styles struct {
	border    lipgloss.Style
	header    lipgloss.Style
	cell      lipgloss.Style
	undefined lipgloss.Style
}

func newStyles() styles {
	return styles{
		border:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		undefined: lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
}
