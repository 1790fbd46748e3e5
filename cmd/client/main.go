package main

import (
	"fmt"

	"github.com/pixelforge/nexus-tui/internal/adapter"
	"github.com/pixelforge/nexus-tui/internal/client"
	"github.com/pixelforge/nexus-tui/internal/config"
	"github.com/pixelforge/nexus-tui/internal/logger"
	"github.com/pixelforge/nexus-tui/internal/service"
	"github.com/pixelforge/nexus-tui/internal/session"
	"github.com/pixelforge/nexus-tui/internal/store"
	"github.com/pixelforge/nexus-tui/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("nexus-client", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("nexus-client", cfg.Logging.FilePath)

	sessionFile, err := store.NewSessionFile(cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session file store")
	}
	sessions := session.NewStore(sessionFile, log)

	api, err := adapter.NewHTTPAPIClient(cfg.Server, sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	services := service.NewClientServices(api, sessions, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
