package text

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/schedlab/internal/application"
	"github.com/bnema/schedlab/internal/domain"
)

// Render formats the whole session into the flat-text report: header,
// process table, then one block per policy in presentation order. The
// output depends only on the summary, so re-rendering identical session
// state is byte-identical.
func Render(summary application.Summary) string {
	var b strings.Builder

	b.WriteString("CPU Scheduling Practice Report\n")
	fmt.Fprintf(&b, "session: %s\n", summary.SessionID)
	fmt.Fprintf(&b, "created: %s\n", summary.CreatedAt.UTC().Format(time.RFC3339))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Workload (horizon: %d)\n", summary.Horizon)
	fmt.Fprintf(&b, "  %-7s  %7s  %7s\n", "process", "arrival", "service")
	for _, p := range summary.Workload {
		fmt.Fprintf(&b, "  %-7c  %7d  %7d\n", p.Letter, p.Arrival, p.Service)
	}

	for _, entry := range summary.Entries {
		b.WriteString("\n")
		fmt.Fprintf(&b, "== %s ==\n", entry.Policy.Label())
		// Quoted so blank units survive casual inspection of the file.
		fmt.Fprintf(&b, "timeline: %q\n", string(entry.Timeline))
		writeSurvey(&b, entry.Survey)
	}

	return b.String()
}

func writeSurvey(b *strings.Builder, record *domain.SurveyRecord) {
	if record == nil {
		b.WriteString("survey: (not recorded)\n")
		return
	}

	for i := 0; i < domain.SurveyQuestionCount; i++ {
		fmt.Fprintf(b, "explanation %d (rating %d/%d):\n", i+1, record.Ratings[i], domain.RatingMax)
		writeIndented(b, record.Explanations[i])
	}

	b.WriteString("comment:\n")
	writeIndented(b, record.Comment)
}

func writeIndented(b *strings.Builder, text string) {
	trimmed := strings.TrimRight(text, "\n")
	if strings.TrimSpace(trimmed) == "" {
		b.WriteString("  (none)\n")
		return
	}

	for _, line := range strings.Split(trimmed, "\n") {
		fmt.Fprintf(b, "  %s\n", line)
	}
}
