package tui

import (
	"context"
	"fmt"

	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	notifier *ToastNotifier
	logger   *logger.Logger
}

func New(services *service.ClientServices, notifier *ToastNotifier, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}

	return &TUI{
		services: services,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Run starts the terminal program and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if t.notifier != nil {
		t.notifier.Attach(program)
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	t.logger.Info().Msg("terminal ui closed")
	return nil
}
