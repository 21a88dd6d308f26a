package wizard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.page() {
	case pageWelcome:
		return m.viewWelcome()
	case pageTimeline:
		return m.viewTimeline()
	case pageSurvey:
		return m.viewSurvey()
	default:
		return m.viewSummary()
	}
}

func (m Model) viewWelcome() string {
	lines := []string{
		m.styles.title.Render("CPU Scheduling Practice"),
		"",
		m.styles.body.Render(
			"You will fill in one CPU timeline per scheduling policy\n" +
				"(FIFO, Round Robin, STCF, MLFQ), answer three short survey\n" +
				"questions per policy, and can export everything to a text\n" +
				"file at the end.",
		),
		"",
		m.styles.body.Render("Each timeline box is one time unit. Type the letter of the\nprocess you believe is running; leave a box empty for idle."),
		"",
		m.styles.hint.Render("enter begin · q quit"),
		m.help.View(m.keys),
	}
	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewTimeline() string {
	policy := m.policy()

	lines := []string{
		m.styles.title.Render(fmt.Sprintf("Timeline: %s", policy.Label())),
		m.styles.step.Render(m.progressLabel()),
		"",
		m.styles.section.Render("Workload"),
		m.procs.View(),
		"",
		m.styles.section.Render(fmt.Sprintf("Who runs at each of the %d time units?", m.grid.Size())),
		m.grid.View(),
	}

	if m.hint != "" {
		lines = append(lines, "", m.styles.warning.Render(m.hint))
	}

	lines = append(lines, "", m.styles.hint.Render("type A-E · arrows move · backspace clears · enter submit · esc quit"))
	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewSurvey() string {
	policy := m.policy()

	lines := []string{
		m.styles.title.Render(fmt.Sprintf("Survey: %s", policy.Label())),
		m.styles.step.Render(m.progressLabel()),
	}

	for i := range surveyPrompts {
		lines = append(lines,
			"",
			m.styles.section.Render(fmt.Sprintf("%d. %s", i+1, surveyPrompts[i])),
			m.form.explanations[i].View(),
			m.viewRating(i),
		)
	}

	lines = append(lines,
		"",
		m.styles.section.Render("Overall comment"),
		m.form.comment.View(),
	)

	if m.hint != "" {
		lines = append(lines, "", m.styles.warning.Render(m.hint))
	}

	lines = append(lines, "", m.styles.hint.Render("tab next field · 1-7 rate · ctrl+s submit · esc quit"))
	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewRating(question int) string {
	focused := m.form.focus == 2*question+1

	label := "confidence:"
	scale := make([]string, 0, 7)
	for v := 1; v <= 7; v++ {
		cell := fmt.Sprintf("%d", v)
		switch {
		case m.form.ratings[question] == v:
			cell = m.styles.ratingPicked.Render(fmt.Sprintf("[%d]", v))
		case focused:
			cell = m.styles.ratingActive.Render(cell)
		default:
			cell = m.styles.ratingIdle.Render(cell)
		}
		scale = append(scale, cell)
	}

	prefix := "  "
	if focused {
		prefix = m.styles.ratingActive.Render("› ")
	}

	return prefix + m.styles.ratingLabel.Render(label) + " " +
		lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpace(scale)...)
}

func joinWithSpace(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

func (m Model) viewSummary() string {
	lines := []string{
		m.styles.title.Render("Session Summary"),
		"",
		m.styles.reportFrame.Render(m.report.View()),
	}

	if m.prompting {
		lines = append(lines, "", m.pathInput.View(), m.styles.hint.Render("enter write file · esc cancel"))
	} else {
		if m.status != "" {
			lines = append(lines, "", m.styles.output.Render(m.status))
		}
		lines = append(lines, "", m.styles.hint.Render("↑/↓ scroll · s save report · q quit"))
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) progressLabel() string {
	return fmt.Sprintf("policy %d of %d", (m.step-1)/2+1, len(m.policies))
}
