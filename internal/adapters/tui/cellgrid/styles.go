package cellgrid

import "github.com/charmbracelet/lipgloss"

type styles struct {
	cell     lipgloss.Style
	focused  lipgloss.Style
	marker   lipgloss.Style
	position lipgloss.Style
}

func newStyles() styles {
	border := lipgloss.RoundedBorder()

	return styles{
		cell: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		focused: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("69")).
			Padding(0, 1),
		marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		position: lipgloss.NewStyle().Faint(true),
	}
}

func joinRow(boxes []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}
