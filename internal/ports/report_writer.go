package ports

import "context"

// ReportWriter persists a rendered report to a user-chosen path.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, data []byte) error
}
