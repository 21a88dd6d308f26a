package workload

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	section lipgloss.Style
	columns lipgloss.Style
	row     lipgloss.Style
	detail  lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().MarginTop(1),
		columns: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		row:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
