package service

import (
	"context"
	"fmt"

	"github.com/pixelforge/nexus-tui/internal/adapter"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/session"
	"github.com/pixelforge/nexus-tui/models"
)

type clientAuthService struct {
	api      adapter.APIClient
	sessions *session.Store
	logger   *logger.Logger
}

// NewClientAuthService builds the auth flow service on top of the API
// client and the session store.
func NewClientAuthService(api adapter.APIClient, sessions *session.Store, log *logger.Logger) ClientAuthService {
	return &clientAuthService{api: api, sessions: sessions, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	auth, err := a.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err = a.sessions.Login(auth); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	a.logger.Info().Str("user_id", auth.User.ID).Str("role", auth.User.Role).Msg("logged in")
	return a.sessions.Current(), nil
}

func (a *clientAuthService) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	auth, err := a.api.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	if err = a.sessions.Login(auth); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	a.logger.Info().Str("user_id", auth.User.ID).Msg("registered")
	return a.sessions.Current(), nil
}

func (a *clientAuthService) Logout() error {
	if err := a.sessions.Logout(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.logger.Info().Msg("logged out")
	return nil
}
