package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/tui"
)

// App runs the console against an already wired session store and UI.
type App struct {
	store   SessionStore
	ui      UI
	version string

	logger *logger.Logger
}

func NewApp(store SessionStore, ui UI, version string, log *logger.Logger) (*App, error) {
	if store == nil || ui == nil {
		return nil, errors.New("client app: store and ui are required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{store: store, ui: ui, version: version, logger: log.WithComponent("app")}, nil
}

// Run drops a session left by another application version, shows the UI
// and closes the store on exit. Quitting with Ctrl+C is not an error.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.store.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	if a.store.EnsureVersion(ctx, a.version) {
		a.logger.Info().Str("version", a.version).Msg("application version changed, session cleared")
	}
	a.store.LogState(ctx)

	if err = a.ui.Run(ctx, router.RootPath); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("console closed by user")
			return nil
		}
		return fmt.Errorf("console run: %w", err)
	}

	return nil
}
