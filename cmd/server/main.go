package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-shortlister/internal/adapter"
	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/handler"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/server"
	"github.com/MKhiriev/resume-shortlister/internal/service"
	"github.com/MKhiriev/resume-shortlister/internal/store"
	"github.com/MKhiriev/resume-shortlister/internal/workers"
	"github.com/MKhiriev/resume-shortlister/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("resume-shortlister")
	log.Info().
		Str("version", build.BuildVersion()).
		Str("commit", build.BuildCommit()).
		Msg("starting")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	scorer, err := adapter.NewHTTPScoringGateway(cfg.Adapter.Scorer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating scoring gateway")
	}
	files, err := adapter.NewFileStorage(ctx, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file storage")
	}
	dispatcher := workers.NewScoringDispatcher(scorer, cfg.Adapter.Scorer.Timeout, log)

	services, err := service.NewServices(storages, service.Adapters{
		Mailer:      adapter.NewSMTPMailer(cfg.Adapter.SMTP, log),
		FileStorage: files,
		Dispatcher:  dispatcher,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(dispatcher), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
