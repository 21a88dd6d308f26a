package quiz

import "github.com/charmbracelet/lipgloss"

type styles struct {
	card    lipgloss.Style
	title   lipgloss.Style
	sub     lipgloss.Style
	problem lipgloss.Style
	output  lipgloss.Style
	hint    lipgloss.Style
}

func newStyles() styles {
	return styles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		title:   lipgloss.NewStyle().Bold(true),
		sub:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		problem: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		output:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		hint:    lipgloss.NewStyle().Faint(true),
	}
}
