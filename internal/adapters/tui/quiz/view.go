package quiz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.phase {
	case phaseWelcome:
		return m.viewWelcome()
	default:
		return m.viewEntry()
	}
}

func (m Model) viewWelcome() string {
	lines := []string{
		m.styles.title.Render("Practice Prompt"),
		m.styles.sub.Render("Press Enter to reveal the problem. Use the 10 boxes only. Enter submits."),
		"",
		m.styles.hint.Render("enter start · q quit"),
	}
	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewEntry() string {
	lines := []string{
		m.styles.title.Render("Practice Prompt"),
		m.styles.problem.Render(promptText),
		"",
		m.grid.View(),
	}

	if m.done {
		lines = append(lines, "", m.styles.output.Render(fmt.Sprintf("Captured: %s", capturedLabel(m.captured))))
	}

	lines = append(lines, "", m.styles.hint.Render("enter submit · esc quit"))
	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
