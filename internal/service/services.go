package service

import (
	"github.com/pixelforge/nexus-tui/internal/adapter"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/session"
	"github.com/pixelforge/nexus-tui/internal/validators"
)

// ClientServices groups everything the screens need.
type ClientServices struct {
	AuthService    ClientAuthService
	ProjectService ClientProjectService
	Sessions       *session.Store
}

// NewClientServices wires the service layer from the transport adapter and
// the session store.
func NewClientServices(api adapter.APIClient, sessions *session.Store, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(api, sessions, log),
		ProjectService: NewClientProjectService(api, validators.NewProjectValidator(), log),
		Sessions:       sessions,
	}
}
