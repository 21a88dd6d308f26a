package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/schedlab"

	reportPathKey = "report.path"
	gridWindowKey = "ui.grid_window"
	logPathKey    = "log.path"

	defaultReportFile = "schedlab-report.txt"
	defaultGridWindow = 10
)

type Config struct {
	// ReportPath is the path offered on the summary page's save prompt.
	ReportPath string
	// GridWindow is how many timeline boxes are visible at once.
	GridWindow int
	// LogPath enables the debug log file when non-empty. A fullscreen
	// program owns the terminal, so logs never go to stdout.
	LogPath string
}

// Load resolves configuration from ~/.config/schedlab/config.toml, falling
// back to defaults when the file is absent.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(reportPathKey, defaultReportFile)
	cfg.SetDefault(gridWindowKey, defaultGridWindow)
	cfg.SetDefault(logPathKey, "")

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		ReportPath: cfg.GetString(reportPathKey),
		GridWindow: cfg.GetInt(gridWindowKey),
		LogPath:    cfg.GetString(logPathKey),
	}

	if loaded.ReportPath == "" {
		return Config{}, errors.New("report path is empty")
	}
	if loaded.GridWindow <= 0 {
		loaded.GridWindow = defaultGridWindow
	}

	return loaded, nil
}

// DefaultPath is where `config init` writes the starter file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir, configName+"."+configType), nil
}
