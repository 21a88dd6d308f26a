// Package quiz implements the single-screen grid-input form: a Start
// action reveals ten single-character boxes and a prompt, Enter captures
// the concatenated answer.
package quiz

import (
	"strings"

	"github.com/bnema/schedlab/internal/adapters/tui/cellgrid"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	gridSize = 10

	promptText = "Enter a 10-character answer (one character per box, letters A-E). " +
		"Press Enter to submit."
)

var allowedLetters = []rune{'A', 'B', 'C', 'D', 'E'}

type phase int

const (
	phaseWelcome phase = iota
	phaseEntry
)

type Model struct {
	grid     cellgrid.Model
	phase    phase
	captured string
	done     bool
	logger   *zap.Logger
	styles   styles
}

type Options struct {
	Logger *zap.Logger
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		grid:   cellgrid.New(gridSize, allowedLetters, gridSize),
		logger: logger,
		styles: newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.grid.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	}

	switch m.phase {
	case phaseWelcome:
		switch keyMsg.String() {
		case "enter":
			m.phase = phaseEntry
			m.grid.Reset()
			m.captured = ""
			m.done = false
			m.logger.Info("quiz started")
		case "q":
			return m, tea.Quit
		}
		return m, nil

	case phaseEntry:
		if keyMsg.Type == tea.KeyEnter {
			m.captured = m.grid.Value()
			m.done = true
			m.logger.Info("quiz answer captured", zap.String("answer", m.captured))
			return m, nil
		}

		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Captured returns the last submitted answer, one character per box with
// spaces for empty boxes, and whether a submission happened at all.
func (m Model) Captured() (string, bool) {
	return m.captured, m.done
}

func capturedLabel(captured string) string {
	if strings.TrimSpace(captured) == "" {
		return "[empty]"
	}
	return captured
}
