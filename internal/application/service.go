package application

import (
	"context"
	"fmt"

	"github.com/bnema/schedlab/internal/domain"
	"github.com/bnema/schedlab/internal/ports"
	"github.com/google/uuid"
)

// Service owns the live practice session and mediates every mutation the
// pages perform on it. One Service, one Session.
type Service struct {
	session  *domain.Session
	workload []domain.Process
	horizon  int
	letters  []rune
	writer   ports.ReportWriter
	render   func(Summary) string
	clock    ports.Clock
}

func NewService(writer ports.ReportWriter, render func(Summary) string, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	workload := domain.Workload()

	return &Service{
		session:  domain.NewSession(uuid.NewString(), clock.Now().UTC()),
		workload: workload,
		horizon:  domain.Horizon(workload),
		letters:  domain.Letters(workload),
		writer:   writer,
		render:   render,
		clock:    clock,
	}
}

func (s *Service) Workload() []domain.Process {
	return s.workload
}

func (s *Service) Horizon() int {
	return s.horizon
}

func (s *Service) Letters() []rune {
	return s.letters
}

// RecordTimeline validates and stores the submitted timeline for a policy,
// replacing any previous submission wholesale.
func (s *Service) RecordTimeline(policy domain.Policy, timeline domain.Timeline) error {
	if !policy.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, policy)
	}

	if err := timeline.Validate(s.horizon, s.letters); err != nil {
		return fmt.Errorf("validate timeline for %s: %w", policy, err)
	}

	s.session.SetTimeline(policy, timeline)
	return nil
}

// RecordSurvey validates and stores the survey record for a policy. Records
// are write-once per policy.
func (s *Service) RecordSurvey(policy domain.Policy, record domain.SurveyRecord) error {
	if !policy.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, policy)
	}

	if err := record.Validate(); err != nil {
		return fmt.Errorf("validate survey for %s: %w", policy, err)
	}

	if err := s.session.SetSurvey(policy, record); err != nil {
		return fmt.Errorf("record survey for %s: %w", policy, err)
	}

	return nil
}

func (s *Service) Timeline(policy domain.Policy) (domain.Timeline, bool) {
	return s.session.Timeline(policy)
}

func (s *Service) Survey(policy domain.Policy) (domain.SurveyRecord, bool) {
	return s.session.Survey(policy)
}

func (s *Service) Complete() bool {
	return s.session.Complete()
}

// Summary snapshots the session for rendering and export.
func (s *Service) Summary() Summary {
	entries := make([]PolicyEntry, 0, len(domain.Policies()))
	for _, policy := range domain.Policies() {
		entry := PolicyEntry{Policy: policy}

		if timeline, ok := s.session.Timeline(policy); ok {
			entry.Timeline = timeline
		} else {
			entry.Timeline = domain.BlankTimeline(s.horizon)
		}

		if record, ok := s.session.Survey(policy); ok {
			survey := record
			entry.Survey = &survey
		}

		entries = append(entries, entry)
	}

	return Summary{
		SessionID: s.session.ID,
		CreatedAt: s.session.CreatedAt,
		Workload:  s.workload,
		Horizon:   s.horizon,
		Entries:   entries,
	}
}

// ExportText renders the full report for the current session state.
func (s *Service) ExportText() string {
	return s.render(s.Summary())
}

// SaveReport renders the report and writes it to path. A failed or
// cancelled save leaves the session untouched.
func (s *Service) SaveReport(ctx context.Context, path string) error {
	if err := s.writer.WriteReport(ctx, path, []byte(s.ExportText())); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
