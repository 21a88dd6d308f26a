// Package wizard implements the guided practice flow: a welcome page, then
// a timeline page and a survey page per scheduling policy in fixed order,
// then a summary page that renders the report and can save it to disk.
package wizard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/schedlab/internal/adapters/tui/cellgrid"
	"github.com/bnema/schedlab/internal/application"
	"github.com/bnema/schedlab/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type page int

const (
	pageWelcome page = iota
	pageTimeline
	pageSurvey
	pageSummary
)

type Model struct {
	svc      *application.Service
	ctx      context.Context
	logger   *zap.Logger
	policies []domain.Policy

	// step drives the linear page sequence: 0 is the welcome page, then a
	// timeline step and a survey step per policy, then the summary.
	step int

	grid       cellgrid.Model
	gridWindow int
	procs      table.Model
	form       surveyForm
	report     viewport.Model
	pathInput  textinput.Model

	prompting bool
	status    string
	hint      string

	styles styles
	keys   keyMap
	help   help.Model
}

type Options struct {
	Service    *application.Service
	Logger     *zap.Logger
	Ctx        context.Context
	ReportPath string
	GridWindow int
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	gridWindow := opts.GridWindow
	if gridWindow <= 0 {
		gridWindow = 10
	}

	pathInput := textinput.New()
	pathInput.Prompt = "path: "
	pathInput.SetValue(opts.ReportPath)

	return Model{
		svc:        opts.Service,
		ctx:        ctx,
		logger:     logger,
		policies:   domain.Policies(),
		gridWindow: gridWindow,
		procs:      newProcessTable(opts.Service.Workload()),
		report:     viewport.New(80, 20),
		pathInput:  pathInput,
		styles:     newStyles(),
		keys:       newKeyMap(),
		help:       help.New(),
	}
}

func newProcessTable(workload []domain.Process) table.Model {
	columns := []table.Column{
		{Title: "process", Width: 9},
		{Title: "arrival", Width: 9},
		{Title: "service", Width: 9},
	}

	rows := make([]table.Row, 0, len(workload))
	for _, p := range workload {
		rows = append(rows, table.Row{
			string(p.Letter),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Service),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	// Read-only table: no row highlight.
	s := table.DefaultStyles()
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

func (m Model) page() page {
	switch {
	case m.step == 0:
		return pageWelcome
	case m.step > 2*len(m.policies):
		return pageSummary
	case (m.step-1)%2 == 0:
		return pageTimeline
	default:
		return pageSurvey
	}
}

func (m Model) policy() domain.Policy {
	return m.policies[(m.step-1)/2]
}

func (m *Model) advance() {
	m.step++
	m.hint = ""

	switch m.page() {
	case pageTimeline:
		m.grid = cellgrid.New(m.svc.Horizon(), m.svc.Letters(), m.gridWindow)
		m.logger.Info("timeline page",
			zap.String("policy", string(m.policy())),
			zap.Int("step", m.step))
	case pageSurvey:
		m.form = newSurveyForm()
		m.logger.Info("survey page",
			zap.String("policy", string(m.policy())),
			zap.Int("step", m.step))
	case pageSummary:
		m.report.SetContent(m.svc.ExportText())
		m.logger.Info("summary page", zap.Int("step", m.step))
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	switch m.page() {
	case pageWelcome:
		return m.updateWelcome(msg)
	case pageTimeline:
		return m.updateTimeline(msg)
	case pageSurvey:
		return m.updateSurvey(msg)
	default:
		return m.updateSummary(msg)
	}
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.help.Width = msg.Width

	width := msg.Width - 6
	if width < 20 {
		width = 20
	}
	height := msg.Height - 10
	if height < 5 {
		height = 5
	}
	m.report.Width = width
	m.report.Height = height
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		m.advance()
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateTimeline(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		policy := m.policy()
		timeline := domain.Timeline(m.grid.Value())
		if err := m.svc.RecordTimeline(policy, timeline); err != nil {
			m.hint = fmt.Sprintf("could not record timeline: %v", err)
			m.logger.Warn("timeline rejected",
				zap.String("policy", string(policy)),
				zap.Error(err))
			return m, nil
		}
		m.logger.Info("timeline recorded",
			zap.String("policy", string(policy)),
			zap.Bool("blank", timeline.Blank()))
		m.advance()
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) updateSurvey(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, tea.Quit
		case "ctrl+s":
			if !m.form.complete() {
				m.hint = "set all three ratings (1-7) before submitting"
				return m, nil
			}
			policy := m.policy()
			if err := m.svc.RecordSurvey(policy, m.form.record()); err != nil {
				m.hint = fmt.Sprintf("could not record survey: %v", err)
				m.logger.Warn("survey rejected",
					zap.String("policy", string(policy)),
					zap.Error(err))
				return m, nil
			}
			m.logger.Info("survey recorded", zap.String("policy", string(policy)))
			m.advance()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd
	}

	if m.prompting {
		switch keyMsg.Type {
		case tea.KeyEsc:
			// Cancelled save: abort silently, keep the session.
			m.prompting = false
			m.status = ""
			return m, nil
		case tea.KeyEnter:
			path := m.pathInput.Value()
			if err := m.svc.SaveReport(m.ctx, path); err != nil {
				m.status = fmt.Sprintf("save failed: %v", err)
				m.logger.Warn("report save failed", zap.String("path", path), zap.Error(err))
			} else {
				m.status = fmt.Sprintf("saved to %s", path)
				m.logger.Info("report saved", zap.String("path", path))
			}
			m.prompting = false
			return m, nil
		}

		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Save):
		m.prompting = true
		m.status = ""
		m.pathInput.CursorEnd()
		return m, m.pathInput.Focus()
	case key.Matches(keyMsg, m.keys.Quit), keyMsg.Type == tea.KeyEsc:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}
