// Package logging builds the optional debug logger. The TUI owns the
// terminal while running, so the only useful sink is a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileMode = 0o644
	logDirMode  = 0o755
)

// New returns a file-backed logger, or a nop logger when path is empty.
// The returned close func flushes and releases the file.
func New(path string) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), logDirMode); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	logger := zap.New(core)
	closeLogger := func() {
		_ = logger.Sync()
		_ = file.Close()
	}

	return logger, closeLogger, nil
}
