// Package tui renders the client's screens with Bubble Tea. The root model
// routes between pages through the access policy; every page is a Bubble Tea
// model that fetches its data on mount via async commands.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/service"
)

// TUI owns the Bubble Tea program lifecycle.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// New creates the terminal UI over the client services.
func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: services are required")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run blocks until the user quits or the program fails. The whole session
// runs in the alternate screen buffer.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(ctx, t.services, t.logger)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if r, ok := final.(RootModel); ok && r.quitByUser {
		t.logger.Info().Msg("ui closed by user")
	}
	return nil
}
