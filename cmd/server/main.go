package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/handler"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/server"
	"github.com/MKhiriev/go-pass-bridge/internal/service"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/internal/workers"
	"github.com/MKhiriev/go-pass-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build: %s\n", build)

	log := logger.NewLogger("go-pass-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	var voiceVerifier adapter.VoiceVerifier
	if cfg.Adapter.VoiceAddress != "" {
		voiceVerifier, err = adapter.NewHTTPVoiceVerifier(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating voice verifier")
		}
	}

	services, err := service.NewServices(storages, voiceVerifier, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(services.SessionService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
