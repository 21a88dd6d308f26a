package wizard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	card         lipgloss.Style
	title        lipgloss.Style
	step         lipgloss.Style
	section      lipgloss.Style
	body         lipgloss.Style
	warning      lipgloss.Style
	output       lipgloss.Style
	hint         lipgloss.Style
	reportFrame  lipgloss.Style
	ratingLabel  lipgloss.Style
	ratingIdle   lipgloss.Style
	ratingActive lipgloss.Style
	ratingPicked lipgloss.Style
}

func newStyles() styles {
	return styles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		step:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		body:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		output:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		hint:    lipgloss.NewStyle().Faint(true),
		reportFrame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		ratingLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ratingIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ratingActive: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ratingPicked: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
	}
}
