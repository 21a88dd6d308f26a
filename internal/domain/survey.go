package domain

import "fmt"

const (
	SurveyQuestionCount = 3

	RatingMin = 1
	RatingMax = 7
)

// SurveyRecord bundles the per-policy survey answers: one explanation and
// one rating per question, plus a free-text overall comment. A record is
// written once when the survey page is submitted and never changed after.
type SurveyRecord struct {
	Explanations [SurveyQuestionCount]string
	Ratings      [SurveyQuestionCount]int
	Comment      string
}

func (r SurveyRecord) Validate() error {
	for i, rating := range r.Ratings {
		if rating < RatingMin || rating > RatingMax {
			return fmt.Errorf("%w: question %d has rating %d, want %d..%d",
				ErrRatingOutOfRange, i+1, rating, RatingMin, RatingMax)
		}
	}
	return nil
}
