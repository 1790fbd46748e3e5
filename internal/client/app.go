// Package client assembles the session store and the terminal UI into the
// runnable client application.
package client

import (
	"context"
	"fmt"

	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/internal/tui"
)

// App is the client application: a restored session plus the terminal UI.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client services and the terminal UI.
func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client: services and ui are required")
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the persisted session, then hands the terminal over to the
// UI until the user quits. A session that cannot be restored (missing file,
// unreadable entry, expired token) starts the UI signed out; that is not an
// error.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.Sessions.Restore()

	a.logger.Info().Bool("authenticated", a.services.Sessions.Authenticated()).Msg("starting terminal ui")
	return a.ui.Run(ctx)
}
