package main

import (
	"fmt"

	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/devapi"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stream-devapi")
	cfg, err := config.GetDevAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := devapi.NewHandler(*cfg, log)
	if err = handler.Seed(); err != nil {
		log.Fatal().Err(err).Msg("error seeding devapi")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Address, log)
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
