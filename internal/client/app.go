package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

var (
	ErrNoServices = errors.New("client: services are not set")
	ErrNoUI       = errors.New("client: ui is not set")
)

// App runs the interactive client.
type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.ClientApp
	logger   *logger.Logger
}

// NewApp returns an [App] that runs ui on top of services.
func NewApp(services *service.ClientServices, ui UI, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if services == nil || services.NoteService == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run shows the UI until the user quits. The configured passphrase, if any,
// is handed to the UI so the unlock screen can be skipped.
func (a *App) Run(ctx context.Context) error {
	info := a.services.AppInfoService.GetAppInfo(ctx)
	a.logger.Info().Str("func", "*App.Run").Str("version", info.BuildVersion()).Msg("client started")

	if err := a.ui.Run(ctx, a.cfg.NotesPassphrase); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("ui stopped with error")
		return fmt.Errorf("client run: %w", err)
	}

	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
