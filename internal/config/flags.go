package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-s/-server server base URL (e.g. "https://nexus.example.com/api")
//	-request-timeout request timeout (e.g. "15s", "1m")
//	-session-file durable session file path
//	-log-file client log file path
//	-c/-config json or yaml config file path
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverBaseURL string
	var requestTimeout time.Duration
	var sessionFilePath string
	var logFilePath string
	var configFilePath string

	fs.StringVar(&serverBaseURL, "s", "", "Server base URL")
	fs.StringVar(&serverBaseURL, "server", "", "Server base URL (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&sessionFilePath, "session-file", "", "Session file path")
	fs.StringVar(&logFilePath, "log-file", "", "Log file path")
	fs.StringVar(&configFilePath, "c", "", "Config file path")
	fs.StringVar(&configFilePath, "config", "", "Config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Server: Server{
			BaseURL:        serverBaseURL,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			FilePath: sessionFilePath,
		},
		Logging: Logging{
			FilePath: logFilePath,
		},
		ConfigFilePath: configFilePath,
	}
}
