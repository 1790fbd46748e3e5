package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// nexus-tui client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the remote PixelForge Nexus API settings.
	Server Server `envPrefix:"SERVER_" yaml:"server" json:"server,omitempty"`

	// Session holds durable session storage settings.
	Session Session `envPrefix:"SESSION_" yaml:"session" json:"session,omitempty"`

	// Logging holds client log output settings.
	Logging Logging `envPrefix:"LOG_" yaml:"logging" json:"logging,omitempty"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" yaml:"-" json:"-"`
}

// Server holds network settings for the outbound transport layer.
type Server struct {
	// BaseURL is the root endpoint of the remote API, including the /api
	// path segment (e.g. "https://nexus.example.com/api").
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL" yaml:"base_url" json:"base_url"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout" json:"request_timeout"`
}

// Session holds settings for the single durable session entry.
type Session struct {
	// FilePath is the path of the file holding the persisted bearer token
	// and profile. Empty means a default next to the executable.
	// Env: SESSION_FILE
	FilePath string `env:"FILE" yaml:"file" json:"file"`
}

// Logging holds client log output settings.
type Logging struct {
	// FilePath is the log file path. Stdout is owned by the terminal UI,
	// so logs always go to a file; empty means a default next to the
	// executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE" yaml:"file" json:"file"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
}
