package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o644
	configDirMode   = 0o755
	tempFilePattern = ".config-*.toml.tmp"
)

type fileSchema struct {
	Report reportSchema `toml:"report"`
	UI     uiSchema     `toml:"ui"`
	Log    logSchema    `toml:"log"`
}

type reportSchema struct {
	Path string `toml:"path"`
}

type uiSchema struct {
	GridWindow int `toml:"grid_window"`
}

type logSchema struct {
	Path string `toml:"path"`
}

// WriteStarter writes a config file populated with the defaults so users
// have something to edit. Refuses to clobber an existing file unless force
// is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}
	}

	schema := fileSchema{
		Report: reportSchema{Path: defaultReportFile},
		UI:     uiSchema{GridWindow: defaultGridWindow},
		Log:    logSchema{Path: ""},
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
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
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
