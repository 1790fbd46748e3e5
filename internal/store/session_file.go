// Package store holds the client's only durable state: a single file with
// the persisted session entry (bearer token plus account profile). No other
// client-side state survives a restart — project records in particular are
// never cached here.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pixelforge/nexus-tui/internal/config"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/models"
)

const defaultSessionFileName = "nexus-session.json"

// SessionFile persists one [models.Session] entry as a small JSON document
// with owner-only permissions.
type SessionFile struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

// NewSessionFile builds the session persistence from config. An empty
// configured path resolves to a fixed file next to the executable.
func NewSessionFile(cfg config.Session, log *logger.Logger) (*SessionFile, error) {
	path := cfg.FilePath
	if path == "" {
		execPath, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolve default session path: %w", err)
		}
		path = filepath.Join(filepath.Dir(execPath), defaultSessionFileName)
	}

	return &SessionFile{path: path, logger: log}, nil
}

// Load reads the persisted session entry. Returns [ErrSessionNotFound] when
// no entry exists, or a wrapped error when the file cannot be read or
// decoded.
func (s *SessionFile) Load() (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session file: %w", err)
	}

	return session, nil
}

// Save writes the session entry, creating parent directories as needed.
func (s *SessionFile) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear removes the persisted entry. Clearing an already-absent entry is a
// no-op, keeping logout idempotent.
func (s *SessionFile) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
