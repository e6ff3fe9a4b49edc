package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/handler"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/server"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("steward-relay")
	cfg, err := config.GetRelayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())
	storages, err := store.NewRelayStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewRelayServices(storages, cfg.Server, info)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
