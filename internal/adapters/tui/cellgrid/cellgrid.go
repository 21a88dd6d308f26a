// Package cellgrid implements a row of single-character input boxes: one
// box per slot, an allow-list of accepted letters, auto-advance on type and
// auto-retreat on backspace-at-empty. Both the quiz form and the wizard
// timeline pages are built on it.
package cellgrid

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	cells   []textinput.Model
	focus   int
	window  int
	offset  int
	allowed map[rune]struct{}
	styles  styles
}

// New builds a grid of size boxes accepting only the given letters. At most
// window boxes are visible at once; the visible range follows focus.
func New(size int, allowed []rune, window int) Model {
	if window <= 0 || window > size {
		window = size
	}

	allowedSet := make(map[rune]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[unicode.ToUpper(r)] = struct{}{}
	}

	cells := make([]textinput.Model, size)
	for i := range cells {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 1
		ti.Width = 1
		cells[i] = ti
	}

	m := Model{
		cells:   cells,
		window:  window,
		allowed: allowedSet,
		styles:  newStyles(),
	}
	m.cells[0].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Non-key messages (cursor blink) go to the focused cell.
		var cmd tea.Cmd
		m.cells[m.focus], cmd = m.cells[m.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyRunes:
		if len(keyMsg.Runes) != 1 {
			return m, nil
		}
		r := unicode.ToUpper(keyMsg.Runes[0])
		if _, ok := m.allowed[r]; !ok {
			// Outside the allow-list: reject, box unchanged.
			return m, nil
		}
		m.cells[m.focus].SetValue(string(r))
		m.setFocus(m.focus + 1)
		return m, nil

	case tea.KeyBackspace:
		if m.cells[m.focus].Value() == "" {
			m.setFocus(m.focus - 1)
			return m, nil
		}
		m.cells[m.focus].SetValue("")
		return m, nil

	case tea.KeyLeft:
		m.setFocus(m.focus - 1)
		return m, nil

	case tea.KeyRight:
		m.setFocus(m.focus + 1)
		return m, nil

	default:
		return m, nil
	}
}

func (m *Model) setFocus(index int) {
	if index < 0 || index >= len(m.cells) {
		return
	}

	m.cells[m.focus].Blur()
	m.focus = index
	m.cells[m.focus].Focus()

	if m.focus < m.offset {
		m.offset = m.focus
	}
	if m.focus >= m.offset+m.window {
		m.offset = m.focus - m.window + 1
	}
}

// Value concatenates the boxes into one string, a space per empty box.
func (m Model) Value() string {
	var b strings.Builder
	for _, cell := range m.cells {
		v := cell.Value()
		if v == "" {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(v)
	}
	return b.String()
}

func (m Model) Focus() int {
	return m.focus
}

func (m Model) Size() int {
	return len(m.cells)
}

// Reset clears every box and returns focus to the first one.
func (m *Model) Reset() {
	for i := range m.cells {
		m.cells[i].SetValue("")
	}
	m.cells[m.focus].Blur()
	m.focus = 0
	m.offset = 0
	m.cells[0].Focus()
}

func (m Model) View() string {
	boxes := make([]string, 0, m.window+2)

	left := " "
	if m.offset > 0 {
		left = m.styles.marker.Render("‹")
	}
	boxes = append(boxes, left)

	end := m.offset + m.window
	if end > len(m.cells) {
		end = len(m.cells)
	}
	for i := m.offset; i < end; i++ {
		style := m.styles.cell
		if i == m.focus {
			style = m.styles.focused
		}
		boxes = append(boxes, style.Render(m.cells[i].View()))
	}

	right := " "
	if end < len(m.cells) {
		right = m.styles.marker.Render("›")
	}
	boxes = append(boxes, right)

	row := joinRow(boxes)
	position := m.styles.position.Render(fmt.Sprintf("unit %d of %d", m.focus+1, len(m.cells)))

	return row + "\n" + position
}
