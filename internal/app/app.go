package app

import (
	"context"
	"fmt"

	"okxpos/internal/config"
	"okxpos/internal/logger"
	"okxpos/internal/monitor"
	livehttp "okxpos/internal/transport/http/live"

	"golang.org/x/sync/errgroup"
)

// App owns the wired dashboard: the refresh monitor and its HTTP surface.
type App struct {
	cfg     *config.Config
	monitor *monitor.Service
	server  *livehttp.Server
	Summary *StartupSummary
}

// NewApp builds the application from cfg without starting it.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	return buildAppWithWire(context.Background(), cfg)
}

// Run serves the dashboard and drives the refresh loop until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.monitor == nil {
		return fmt.Errorf("monitor not initialized")
	}
	if a.Summary != nil {
		a.Summary.Print()
	}

	if err := config.Watch(a.cfg, a.applyConfig); err != nil {
		logger.Warnf("config watch disabled: %v", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	if a.server != nil {
		group.Go(func() error {
			if err := a.server.Start(ctx); err != nil {
				return fmt.Errorf("dashboard http server error: %w", err)
			}
			return nil
		})
	}
	group.Go(func() error {
		return a.monitor.Run(ctx, a.cfg.Poll.AutoStart)
	})
	return group.Wait()
}

// applyConfig pushes the hot-reloadable settings of a re-read config file.
func (a *App) applyConfig(next *config.Config) {
	if next == nil {
		return
	}
	logger.SetLevel(next.App.LogLevel)
	if err := a.monitor.SetInterval(next.Poll.RefreshInterval()); err != nil {
		logger.Warnf("refresh interval from config rejected: %v", err)
	}
}

// Monitor exposes the refresh service, mainly for tests.
func (a *App) Monitor() *monitor.Service {
	if a == nil {
		return nil
	}
	return a.monitor
}
