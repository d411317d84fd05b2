package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-engine/internal/config"
	"github.com/MKhiriev/go-blog-engine/internal/handler"
	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/MKhiriev/go-blog-engine/internal/server"
	"github.com/MKhiriev/go-blog-engine/internal/service"
	"github.com/MKhiriev/go-blog-engine/internal/session"
	"github.com/MKhiriev/go-blog-engine/internal/store"
	"github.com/MKhiriev/go-blog-engine/internal/utils"
	"github.com/MKhiriev/go-blog-engine/internal/workers"
	"github.com/MKhiriev/go-blog-engine/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB, db.Driver()); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	adminSessions := session.NewRegistry(cfg.Admin.SessionTTL, utils.NewUUIDGenerator(), log)
	services := service.NewServices(*storages, adminSessions, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	sweeper := workers.NewSessionSweeper(adminSessions, cfg.Workers.SweepInterval, log)
	defer sweeper.Stop()

	backgroundWorkers := workers.NewWorkers(sweeper)
	backgroundWorkers.Run()

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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
