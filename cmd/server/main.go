package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/handler"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/server"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/internal/store"
	"github.com/MKhiriev/go-ride-hail/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.Name, cfg.App.LogLevel)
	if cfg.UsesDevelopmentSecret() {
		log.Warn().Msg("JWT_SECRET is not set, tokens are signed with the development secret")
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
}
