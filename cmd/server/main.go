package main

import (
	"context"
	"fmt"

	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/handler"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/server"
	"github.com/qrlogix/qrlogix-server/internal/service"
	"github.com/qrlogix/qrlogix-server/internal/store"
	"github.com/qrlogix/qrlogix-server/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qrlogix-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("identity_table", cfg.Identity.Table).
		Bool("qr_endpoints", cfg.Identity.QREnabled()).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, cfg.Identity, log)
	services := service.NewServices(storages, cfg, log)
	handlers := handler.NewHandlers(services, cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
