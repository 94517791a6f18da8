package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/pmezhin/vesselwatch/internal/adapter"
	"github.com/pmezhin/vesselwatch/internal/config"
	httphandler "github.com/pmezhin/vesselwatch/internal/handler/http"
	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/internal/server"
	"github.com/pmezhin/vesselwatch/internal/service"
	"github.com/pmezhin/vesselwatch/internal/session"
	"github.com/pmezhin/vesselwatch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Values from a local .env complement the real environment; absence of
	// the file is not an error.
	_ = godotenv.Load()

	log := logger.NewLogger("vesselwatch-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	sess := session.Load(cfg.Session.CookieFile, log)

	tracker, err := adapter.NewHTTPTrackerAdapter(cfg.Upstream, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create tracker adapter")
	}

	services, err := service.NewServices(tracker, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	handlers := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	srv.RunServer()
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

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
