package wizard

import (
	"github.com/bnema/schedlab/internal/domain"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

var surveyPrompts = [domain.SurveyQuestionCount]string{
	"Explain how this policy decides which process runs next.",
	"Walk through why your timeline follows from that rule.",
	"Describe a workload where this policy performs poorly.",
}

// Field order on the survey page: explanation then its rating, three times,
// then the overall comment.
const (
	fieldExplanation1 = iota
	fieldRating1
	fieldExplanation2
	fieldRating2
	fieldExplanation3
	fieldRating3
	fieldComment
	surveyFieldCount
)

type surveyForm struct {
	explanations [domain.SurveyQuestionCount]textarea.Model
	ratings      [domain.SurveyQuestionCount]int
	comment      textarea.Model
	focus        int
}

func newSurveyForm() surveyForm {
	var f surveyForm

	for i := range f.explanations {
		f.explanations[i] = newSurveyArea("Type your explanation here...")
	}
	f.comment = newSurveyArea("Anything else about this policy? (optional)")

	f.explanations[0].Focus()
	return f
}

func newSurveyArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(64)
	ta.SetHeight(3)
	ta.CharLimit = 0
	return ta
}

func (f surveyForm) Update(msg tea.Msg) (surveyForm, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "tab":
			f.setFocus((f.focus + 1) % surveyFieldCount)
			return f, nil
		case "shift+tab":
			f.setFocus((f.focus + surveyFieldCount - 1) % surveyFieldCount)
			return f, nil
		}

		if f.isRatingField(f.focus) {
			if r := ratingFromKey(keyMsg); r != 0 {
				f.ratings[f.focus/2] = r
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldExplanation1, fieldExplanation2, fieldExplanation3:
		i := f.focus / 2
		f.explanations[i], cmd = f.explanations[i].Update(msg)
	case fieldComment:
		f.comment, cmd = f.comment.Update(msg)
	}
	return f, cmd
}

func (f *surveyForm) setFocus(index int) {
	for i := range f.explanations {
		f.explanations[i].Blur()
	}
	f.comment.Blur()

	f.focus = index
	switch index {
	case fieldExplanation1, fieldExplanation2, fieldExplanation3:
		f.explanations[index/2].Focus()
	case fieldComment:
		f.comment.Focus()
	}
}

func (f surveyForm) isRatingField(index int) bool {
	return index == fieldRating1 || index == fieldRating2 || index == fieldRating3
}

func ratingFromKey(msg tea.KeyMsg) int {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0
	}
	r := msg.Runes[0]
	if r < '1' || r > '7' {
		return 0
	}
	return int(r - '0')
}

// complete reports whether every rating has been set; explanations and the
// comment may stay empty.
func (f surveyForm) complete() bool {
	for _, rating := range f.ratings {
		if rating == 0 {
			return false
		}
	}
	return true
}

func (f surveyForm) record() domain.SurveyRecord {
	var record domain.SurveyRecord
	for i := range f.explanations {
		record.Explanations[i] = f.explanations[i].Value()
		record.Ratings[i] = f.ratings[i]
	}
	record.Comment = f.comment.Value()
	return record
}
