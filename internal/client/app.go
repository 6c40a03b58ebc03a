package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/service"
	"github.com/MKhiriev/go-safe-auth/internal/tui"
)

// UI is the interactive front-end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
// Leaving with ctrl+c is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		err = nil
	}

	if info, ok := a.services.SessionService.Session(); ok {
		a.logger.Info().Str("eoa", info.EOA).Msg("exiting with an active session")
	}

	a.logger.Info().Err(err).Msg("client stopped")
	return err
}
