package main

import (
	"fmt"

	"github.com/azgeda96/secure-pass-vault/internal/adapter"
	"github.com/azgeda96/secure-pass-vault/internal/client"
	"github.com/azgeda96/secure-pass-vault/internal/config"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/service"
	"github.com/azgeda96/secure-pass-vault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	notifier := tui.NewToastNotifier()
	services := service.NewClientServices(serverAdapter, notifier, log)

	ui, err := tui.New(services, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
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
