package domain

import "time"

// Session is the in-memory state of one practice run: the submitted
// timeline and survey per policy. It lives for the process lifetime and is
// discarded on exit unless exported.
type Session struct {
	ID        string
	CreatedAt time.Time

	timelines map[Policy]Timeline
	surveys   map[Policy]SurveyRecord
}

func NewSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		timelines: make(map[Policy]Timeline, len(Policies())),
		surveys:   make(map[Policy]SurveyRecord, len(Policies())),
	}
}

// SetTimeline replaces the stored timeline for the policy wholesale.
// Timelines are never patched in place, each submission overwrites.
func (s *Session) SetTimeline(policy Policy, timeline Timeline) {
	s.timelines[policy] = timeline
}

func (s *Session) Timeline(policy Policy) (Timeline, bool) {
	timeline, ok := s.timelines[policy]
	return timeline, ok
}

// SetSurvey stores the survey record for the policy. Survey records are
// write-once; a second submission for the same policy is rejected.
func (s *Session) SetSurvey(policy Policy, record SurveyRecord) error {
	if _, ok := s.surveys[policy]; ok {
		return ErrSurveyAlreadyRecorded
	}
	s.surveys[policy] = record
	return nil
}

func (s *Session) Survey(policy Policy) (SurveyRecord, bool) {
	record, ok := s.surveys[policy]
	return record, ok
}

// Complete reports whether every policy has both a timeline and a survey.
func (s *Session) Complete() bool {
	for _, policy := range Policies() {
		if _, ok := s.timelines[policy]; !ok {
			return false
		}
		if _, ok := s.surveys[policy]; !ok {
			return false
		}
	}
	return true
}
