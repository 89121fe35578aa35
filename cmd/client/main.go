package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "go-notes-keeper:", app.UserMessage(err)+":", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("notes-client", cfg.Log.Path, cfg.Log.Level)
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages, info, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Err(err).Msg("error creating ui")
		return err
	}

	a, err := client.NewApp(services, ui, cfg.App, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}

	return a.Run(ctx)
}
