package text

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/schedlab/internal/ports"
)

const (
	reportFileMode  = 0o644
	reportDirMode   = 0o755
	tempFilePattern = ".report-*.txt.tmp"
)

// Writer persists reports with a write-temp-then-rename so a failed save
// never leaves a truncated report behind.
type Writer struct{}

var _ ports.ReportWriter = Writer{}

func (Writer) WriteReport(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, reportDirMode); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp report file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp report file: %w", err)
	}

	if err := tempFile.Chmod(reportFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp report file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp report file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace report file: %w", err)
	}

	cleanup = false
	return nil
}
