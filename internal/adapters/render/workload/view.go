package workload

import (
	"fmt"
	"strings"

	"github.com/bnema/schedlab/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(processes []domain.Process, s styles) string {
	lines := []string{
		s.title.Render("Practice Workload"),
		s.header.Render(fmt.Sprintf("processes: %d, horizon: %d units", len(processes), domain.Horizon(processes))),
	}

	if len(processes) == 0 {
		lines = append(lines, s.empty.Render("No processes defined."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderTable(processes, s)))
	lines = append(lines, s.section.Render(renderPolicies(s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTable(processes []domain.Process, s styles) string {
	rows := []string{
		s.columns.Render(fmt.Sprintf("%-9s %9s %9s", "process", "arrival", "service")),
	}

	for _, p := range processes {
		rows = append(rows, s.row.Render(fmt.Sprintf("%-9c %9d %9d", p.Letter, p.Arrival, p.Service)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderPolicies(s styles) string {
	labels := make([]string, 0, len(domain.Policies()))
	for _, policy := range domain.Policies() {
		labels = append(labels, policy.Label())
	}

	return s.detail.Render("policy order: " + strings.Join(labels, ", "))
}
