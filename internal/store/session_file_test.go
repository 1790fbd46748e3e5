package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/nexus-tui/internal/config"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/models"
)

func newTestSessionFile(t *testing.T) *SessionFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewSessionFile(config.Session{FilePath: path}, logger.Nop())
	require.NoError(t, err)
	return s
}

func testEntry() models.Session {
	return models.Session{
		Token: "tok-123",
		User:  &models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: models.RoleAdmin},
	}
}

func TestSessionFile_SaveThenLoad(t *testing.T) {
	s := newTestSessionFile(t)

	require.NoError(t, s.Save(testEntry()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
}

func TestSessionFile_LoadMissing(t *testing.T) {
	s := newTestSessionFile(t)

	_, err := s.Load()

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionFile_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewSessionFile(config.Session{FilePath: path}, logger.Nop())
	require.NoError(t, err)

	_, err = s.Load()

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionFile_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
	s, err := NewSessionFile(config.Session{FilePath: path}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Save(testEntry()))

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestSessionFile_OwnerOnlyPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewSessionFile(config.Session{FilePath: path}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Save(testEntry()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionFile_ClearIsIdempotent(t *testing.T) {
	s := newTestSessionFile(t)
	require.NoError(t, s.Save(testEntry()))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
