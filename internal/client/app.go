package client

import (
	"context"
	"fmt"

	"github.com/azgeda96/secure-pass-vault/internal/config"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/service"
	"github.com/azgeda96/secure-pass-vault/internal/tui"
	"github.com/azgeda96/secure-pass-vault/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errIncompleteWiring
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewRefreshWorker(services.RefreshJob, workersCfg)),
		logger:   logger,
	}, nil
}

// Run starts the background workers and the terminal UI, and blocks until
// the UI exits. Workers are always stopped before Run returns.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workers.Run(ctx)
	defer a.workers.Shutdown()

	a.logger.Info().Msg("client application started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client run: %w", err)
	}

	return nil
}
