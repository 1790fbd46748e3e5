package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for file decoding. Durations are
// parsed from strings like "15s" via [Duration].
type fileConfig struct {
	Server struct {
		BaseURL        string   `yaml:"base_url" json:"base_url"`
		RequestTimeout Duration `yaml:"request_timeout" json:"request_timeout"`
	} `yaml:"server" json:"server,omitempty"`

	Session struct {
		FilePath string `yaml:"file" json:"file"`
	} `yaml:"session" json:"session,omitempty"`

	Logging struct {
		FilePath string `yaml:"file" json:"file"`
	} `yaml:"logging" json:"logging,omitempty"`
}

// parseFile reads a configuration file and decodes it as YAML or JSON based
// on the file extension. Files without a recognised extension are decoded as
// JSON.
func parseFile(filePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Server: Server{
			BaseURL:        fileCfg.Server.BaseURL,
			RequestTimeout: fileCfg.Server.RequestTimeout.Std(),
		},
		Session: Session{
			FilePath: fileCfg.Session.FilePath,
		},
		Logging: Logging{
			FilePath: fileCfg.Logging.FilePath,
		},
	}, nil
}
