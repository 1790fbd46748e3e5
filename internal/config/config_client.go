package config

import (
	"fmt"
	"time"
)

// Defaults applied when neither env, flags, nor the config file supply a
// value.
const (
	DefaultBaseURL        = "http://localhost:8080/api"
	DefaultRequestTimeout = 15 * time.Second
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	// Server contains the remote API address and request timeout.
	Server Server
	// Session contains the durable session file path (may be empty; the
	// store then picks a location next to the executable).
	Session Session
	// Logging contains the client log file path (may be empty).
	Logging Logging
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], applies defaults for
// the remote endpoint, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Server:  cfg.Server,
		Session: cfg.Session,
		Logging: cfg.Logging,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Server.BaseURL == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
