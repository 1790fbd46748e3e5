// Package session owns the client's authentication state.
//
// The [Store] is the single writer of the token/profile pair: only Login and
// Logout mutate it. All readers (the access policy, the HTTP adapter, the
// screens) take a snapshot at call time, never a captured copy, so a logout
// applies to the next guarded navigation and the next outgoing request.
// Dependents that need to react to changes register a listener via
// [Store.Subscribe].
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/store"
	"github.com/pixelforge/nexus-tui/models"
)

// Persistence is the durable backing for the session entry. Implemented by
// [store.SessionFile].
type Persistence interface {
	Load() (models.Session, error)
	Save(models.Session) error
	Clear() error
}

// Listener is notified with a snapshot after every session change.
type Listener func(models.Session)

// Store holds the current session with a single-writer discipline.
type Store struct {
	persist Persistence
	logger  *logger.Logger

	mu        sync.RWMutex
	current   models.Session
	listeners []Listener
}

// NewStore creates an empty (logged out) session store backed by persist.
func NewStore(persist Persistence, log *logger.Logger) *Store {
	return &Store{persist: persist, logger: log}
}

// Restore loads the persisted session entry at startup. The restored entry
// becomes the current session only if it is complete (token and profile)
// and the token has not already expired; anything else is discarded and the
// durable entry cleared, leaving the store logged out. Restore never fails
// the startup path — a broken entry just means logging in again.
func (s *Store) Restore() {
	entry, err := s.persist.Load()
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Warn().Err(err).Msg("discarding unreadable session entry")
			_ = s.persist.Clear()
		}
		return
	}

	if !entry.Authenticated() {
		// A token without a resolved user is not authenticated.
		s.logger.Info().Msg("discarding incomplete session entry")
		_ = s.persist.Clear()
		return
	}

	if tokenExpired(entry.Token, time.Now()) {
		s.logger.Info().Msg("discarding expired session entry")
		_ = s.persist.Clear()
		return
	}

	s.mu.Lock()
	s.current = entry
	s.mu.Unlock()
	s.notify()
}

// Login stores the auth payload and persists it immediately. The payload is
// assumed to be normalized by the adapter (token and user both present).
func (s *Store) Login(auth models.AuthResponse) error {
	if auth.Token == "" || auth.User.ID == "" {
		return fmt.Errorf("incomplete auth payload")
	}

	user := auth.User
	entry := models.Session{Token: auth.Token, User: &user}

	s.mu.Lock()
	s.current = entry
	s.mu.Unlock()

	if err := s.persist.Save(entry); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.notify()
	return nil
}

// Logout clears the token and profile. Idempotent: calling it while logged
// out is a no-op, not an error.
func (s *Store) Logout() error {
	s.mu.Lock()
	wasAuthenticated := s.current.Authenticated() || s.current.Token != ""
	s.current = models.Session{}
	s.mu.Unlock()

	if err := s.persist.Clear(); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	if wasAuthenticated {
		s.notify()
	}
	return nil
}

// Current returns a snapshot of the session. The profile is copied so
// callers cannot mutate shared state.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.current
	if snapshot.User != nil {
		user := *snapshot.User
		snapshot.User = &user
	}
	return snapshot
}

// Token returns the live bearer token. Implements the adapter's token
// source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Authenticated reports whether both token and profile are present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Authenticated()
}

// Subscribe registers a listener invoked with a snapshot after every login,
// logout and successful restore. Listeners run synchronously on the
// mutating call.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) notify() {
	snapshot := s.Current()

	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// tokenExpired inspects the bearer token's exp claim without verifying the
// signature. Tokens that are not JWTs, or carry no exp claim, never expire
// client-side; the server remains the authority either way.
func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
