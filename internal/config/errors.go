package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid remote API settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
