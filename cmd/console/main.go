package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	figure "github.com/common-nighthawk/go-figure"

	"github.com/MKhiriev/stream-console/internal/adapter"
	"github.com/MKhiriev/stream-console/internal/client"
	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/crypto"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/internal/store"
	"github.com/MKhiriev/stream-console/internal/tui"
	"github.com/MKhiriev/stream-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetConsoleConfig()
	if err != nil {
		logger.NewLogger("stream-console").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("stream-console", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	medium, err := store.NewMedium(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage medium")
	}

	cipher, err := crypto.NewStorageCipher(cfg.Security.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage cipher")
	}

	storage := store.NewSecureStorage(medium, cipher, store.Options{
		DebugMirror:    cfg.Security.DebugMirror,
		PurgeCorrupted: cfg.Security.PurgeCorrupted,
	}, log)

	api, err := adapter.NewHTTPAPIClient(cfg.API, storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	services, err := service.NewServices(cfg.App, buildInfo, storage, api, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, router.New(router.DefaultRoutes(), storage, log), cfg.API.BaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(storage, ui, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	figure.NewFigure("stream-console", "cybermedium", true).Print()
	fmt.Println()
	for _, f := range info.Fields() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(f[0]), f[1])
	}
}
