package application

import (
	"time"

	"github.com/bnema/schedlab/internal/domain"
)

// PolicyEntry is the collected state for one policy, in presentation order.
// Survey is nil until the survey page for the policy has been submitted.
type PolicyEntry struct {
	Policy   domain.Policy
	Timeline domain.Timeline
	Survey   *domain.SurveyRecord
}

// Summary is the read model handed to renderers and the exporter. It is a
// plain snapshot: rendering it twice for the same session state must give
// byte-identical output.
type Summary struct {
	SessionID string
	CreatedAt time.Time
	Workload  []domain.Process
	Horizon   int
	Entries   []PolicyEntry
}
