package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = []*StructuredConfig{
		{Server: Server{BaseURL: "https://env.example.com/api"}},
		{Server: Server{BaseURL: "https://flag.example.com/api", RequestTimeout: 30 * time.Second}},
		{Session: Session{FilePath: "file-session.json"}},
	}

	cfg, err := b.build()

	require.NoError(t, err)
	// The env value came first, so the flag value must not overwrite it.
	assert.Equal(t, "https://env.example.com/api", cfg.Server.BaseURL)
	// Fields empty in earlier sources are filled from later ones.
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file-session.json", cfg.Session.FilePath)
}

func TestBuild_EmptySources(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("bad env value")

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad env value")
}

func TestWithFile_UsesLastConfiguredPath(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "server:\n  base_url: https://file.example.com/api\n")

	b := newConfigBuilder()
	b.configs = []*StructuredConfig{
		{ConfigFilePath: ""},
		{ConfigFilePath: path},
	}

	cfg, err := b.withFile().build()

	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com/api", cfg.Server.BaseURL)
}

func TestWithFile_NoPathConfigured(t *testing.T) {
	b := newConfigBuilder()
	b.configs = []*StructuredConfig{{}}

	cfg, err := b.withFile().build()

	require.NoError(t, err)
	assert.Empty(t, cfg.Server.BaseURL)
}

func TestWithFile_BadFileFailsBuild(t *testing.T) {
	b := newConfigBuilder()
	b.configs = []*StructuredConfig{{ConfigFilePath: "/nonexistent/config.yaml"}}

	_, err := b.withFile().build()

	assert.Error(t, err)
}

// ── Client config defaults ───────────────────────────────────────────────────

func TestClientConfig_AppliesDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.Server.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{Server: Server{
		BaseURL:        "https://nexus.example.com/api",
		RequestTimeout: time.Minute,
	}}
	cfg.applyDefaults()

	assert.Equal(t, "https://nexus.example.com/api", cfg.Server.BaseURL)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestClientConfig_ValidateRejectsEmptyServer(t *testing.T) {
	cfg := &ClientConfig{}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
