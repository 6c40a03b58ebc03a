package main

import (
	"fmt"

	"github.com/MKhiriev/go-safe-auth/internal/authkit"
	"github.com/MKhiriev/go-safe-auth/internal/client"
	"github.com/MKhiriev/go-safe-auth/internal/config"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/service"
	"github.com/MKhiriev/go-safe-auth/internal/tui"
	"github.com/MKhiriev/go-safe-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("go-safe-auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Auth.ClientID == "" {
		log.Warn().Msg("AUTH_CLIENT_ID is empty, the provider will likely refuse initialization")
	}

	services := service.NewClientServices(cfg.AuthOptions(), authkit.NewInitializer(cfg, log), buildInfo, log)

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

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
