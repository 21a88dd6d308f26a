package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	textexport "github.com/bnema/schedlab/internal/adapters/export/text"
	"github.com/bnema/schedlab/internal/application"
	"github.com/bnema/schedlab/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func tab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func newTestWizard(t *testing.T, reportPath string) Model {
	t.Helper()
	svc := application.NewService(textexport.Writer{}, textexport.Render, fixedClock{})
	return New(Options{
		Service:    svc,
		ReportPath: reportPath,
		GridWindow: 10,
	})
}

// fillSurvey drives a survey page to completion: rating 5 for every
// question, explanations and comment left empty, then submits.
func fillSurvey(t *testing.T, m Model) Model {
	t.Helper()
	require.Equal(t, pageSurvey, m.page())

	for i := 0; i < domain.SurveyQuestionCount; i++ {
		m = update(t, m, tab()) // explanation -> rating
		m = update(t, m, keyRune('5'))
		m = update(t, m, tab()) // rating -> next field
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	return m
}

func TestLinearPageSequence(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	require.Equal(t, pageWelcome, m.page())

	m = update(t, m, enter())

	policies := domain.Policies()
	for i, policy := range policies {
		require.Equal(t, pageTimeline, m.page(), "policy %d", i)
		require.Equal(t, policy, m.policy())

		m = update(t, m, enter()) // submit empty timeline
		require.Equal(t, pageSurvey, m.page())
		require.Equal(t, policy, m.policy())

		m = fillSurvey(t, m)
	}

	assert.Equal(t, pageSummary, m.page())
}

func TestEmptyTimelineSubmissionRecordsAllBlanks(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())
	m = update(t, m, enter())

	timeline, ok := m.svc.Timeline(domain.PolicyFIFO)
	require.True(t, ok)
	assert.Equal(t, domain.BlankTimeline(20), timeline)
}

func TestTimelineLettersRecorded(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())

	for _, r := range "aabb" {
		m = update(t, m, keyRune(r))
	}
	m = update(t, m, enter())

	timeline, ok := m.svc.Timeline(domain.PolicyFIFO)
	require.True(t, ok)
	assert.Equal(t, domain.Timeline("AABB"+strings.Repeat(" ", 16)), timeline)
}

func TestTimelinePageShowsProcessTable(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())

	view := m.View()
	assert.Contains(t, view, "Timeline: FIFO")
	assert.Contains(t, view, "process")
	assert.Contains(t, view, "arrival")
	assert.Contains(t, view, "policy 1 of 4")
}

func TestSurveySubmitBlockedUntilRated(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())
	m = update(t, m, enter())
	require.Equal(t, pageSurvey, m.page())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, pageSurvey, m.page())
	assert.Contains(t, m.View(), "set all three ratings")

	_, ok := m.svc.Survey(domain.PolicyFIFO)
	assert.False(t, ok)
}

func TestSurveyRatingsAndTextRecorded(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())
	m = update(t, m, enter())

	// Type into the first explanation, then rate all three questions.
	for _, r := range "fifo runs arrivals in order" {
		m = update(t, m, keyRune(r))
	}
	m = fillSurvey(t, m)
	require.Equal(t, pageTimeline, m.page())

	record, ok := m.svc.Survey(domain.PolicyFIFO)
	require.True(t, ok)
	assert.Equal(t, "fifo runs arrivals in order", record.Explanations[0])
	assert.Equal(t, [domain.SurveyQuestionCount]int{5, 5, 5}, record.Ratings)
}

func TestRatingKeysOnlyApplyToFocusedRating(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())
	m = update(t, m, enter())

	// Focus sits on the first explanation; digits are text there.
	m = update(t, m, keyRune('7'))
	assert.Equal(t, [domain.SurveyQuestionCount]int{0, 0, 0}, m.form.ratings)

	m = update(t, m, tab())
	m = update(t, m, keyRune('7'))
	assert.Equal(t, [domain.SurveyQuestionCount]int{7, 0, 0}, m.form.ratings)

	// Re-rating replaces the previous pick.
	m = update(t, m, keyRune('2'))
	assert.Equal(t, [domain.SurveyQuestionCount]int{2, 0, 0}, m.form.ratings)
}

func completeWizard(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, enter())
	for range domain.Policies() {
		m = update(t, m, enter())
		m = fillSurvey(t, m)
	}
	require.Equal(t, pageSummary, m.page())
	return m
}

func TestSummaryShowsReport(t *testing.T) {
	m := completeWizard(t, newTestWizard(t, "report.txt"))

	view := m.View()
	assert.Contains(t, view, "Session Summary")
	assert.Contains(t, view, "CPU Scheduling Practice Report")
}

func TestSaveReportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	m := completeWizard(t, newTestWizard(t, path))

	m = update(t, m, keyRune('s'))
	require.True(t, m.prompting)

	m = update(t, m, enter())
	assert.False(t, m.prompting)
	assert.Contains(t, m.status, "saved to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "== MLFQ ==")
	assert.Contains(t, string(data), "(rating 5/7)")
}

func TestSaveTwiceIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	m := completeWizard(t, newTestWizard(t, path))

	m = update(t, m, keyRune('s'))
	m = update(t, m, enter())
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	m = update(t, m, keyRune('s'))
	m = update(t, m, enter())
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSaveCancelledSilently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	m := completeWizard(t, newTestWizard(t, path))

	m = update(t, m, keyRune('s'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.prompting)
	assert.Empty(t, m.status)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveFailureKeepsSession(t *testing.T) {
	// Point the save at a path whose parent cannot be created.
	blocked := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	path := filepath.Join(blocked, "report.txt")

	m := completeWizard(t, newTestWizard(t, path))

	m = update(t, m, keyRune('s'))
	m = update(t, m, enter())

	assert.Contains(t, m.status, "save failed")
	assert.True(t, m.svc.Complete())
}

func TestWizardStartsFreshGridPerPolicy(t *testing.T) {
	m := newTestWizard(t, "report.txt")
	m = update(t, m, enter())

	m = update(t, m, keyRune('a'))
	m = update(t, m, enter())
	m = fillSurvey(t, m)
	require.Equal(t, pageTimeline, m.page())
	require.Equal(t, domain.PolicyRR, m.policy())

	assert.Equal(t, strings.Repeat(" ", 20), m.grid.Value())
}
