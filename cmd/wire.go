package cmd

import (
	"fmt"

	textexport "github.com/bnema/schedlab/internal/adapters/export/text"
	workloadrender "github.com/bnema/schedlab/internal/adapters/render/workload"
	"github.com/bnema/schedlab/internal/application"
	"github.com/bnema/schedlab/internal/config"
	"github.com/bnema/schedlab/internal/domain"
	"github.com/bnema/schedlab/internal/logging"
	"github.com/bnema/schedlab/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg              config.Config
	logger           *zap.Logger
	closeLogger      func()
	workloadRenderer func([]domain.Process) (string, error)
	newService       func() *application.Service
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	logger, closeLogger, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		cfg:              cfg,
		logger:           logger,
		closeLogger:      closeLogger,
		workloadRenderer: workloadrender.Render,
		newService: func() *application.Service {
			return application.NewService(textexport.Writer{}, textexport.Render, ports.SystemClock{})
		},
	}, nil
}
