package app

import (
	"context"
	"fmt"

	"okxpos/internal/config"
	"okxpos/internal/gateway/notifier"
	"okxpos/internal/logger"
	"okxpos/internal/monitor"
	"okxpos/internal/okx"
	"okxpos/internal/scheduler"
	livehttp "okxpos/internal/transport/http/live"
)

type AppBuilder struct {
	cfg *config.Config

	fetcherFn     func(config.OKXConfig) monitor.Fetcher
	credentialsFn func() monitor.CredentialSource
	serverFn      func(config.AppConfig, livehttp.Controller, *livehttp.Hub) (*livehttp.Server, error)
}

type AppBuilderOption func(*AppBuilder)

// WithFetcher replaces the OKX REST client, e.g. with a stub in tests.
func WithFetcher(f monitor.Fetcher) AppBuilderOption {
	return func(b *AppBuilder) {
		b.fetcherFn = func(config.OKXConfig) monitor.Fetcher { return f }
	}
}

// WithCredentials replaces the environment credential source.
func WithCredentials(src monitor.CredentialSource) AppBuilderOption {
	return func(b *AppBuilder) {
		b.credentialsFn = func() monitor.CredentialSource { return src }
	}
}

func NewAppBuilder(cfg *config.Config, opts ...AppBuilderOption) *AppBuilder {
	b := &AppBuilder{
		cfg:           cfg,
		fetcherFn:     buildOKXClient,
		credentialsFn: buildEnvCredentials,
		serverFn:      buildDashboardServer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func buildOKXClient(cfg config.OKXConfig) monitor.Fetcher {
	return okx.NewClient(cfg.BaseURL, okx.WithTimeout(cfg.RequestTimeout()))
}

func buildEnvCredentials() monitor.CredentialSource {
	return config.EnvCredentials{}
}

func buildDashboardServer(cfg config.AppConfig, ctrl livehttp.Controller, hub *livehttp.Hub) (*livehttp.Server, error) {
	return livehttp.NewServer(livehttp.ServerConfig{Addr: cfg.HTTPAddr, Controller: ctrl, Hub: hub})
}

func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b == nil || b.cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	cfg := b.cfg
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loop := scheduler.NewIntervalLoop("positions", cfg.Poll.RefreshInterval())
	if err := loop.SetInterval(cfg.Poll.RefreshInterval()); err != nil {
		return nil, fmt.Errorf("poll.refresh_seconds: %w", err)
	}
	hub := livehttp.NewHub()
	svc, err := monitor.NewService(monitor.Options{
		Fetcher:     b.fetcherFn(cfg.OKX),
		Credentials: b.credentialsFn(),
		Loop:        loop,
		State:       monitor.NewState(cfg.UI.LogCapacity),
		Notifier: notifier.Multi{
			hub,
			notifier.Func(func(text string) error {
				logger.Warnf("dashboard notice: %s", text)
				return nil
			}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build monitor: %w", err)
	}
	svc.AddPublisher(hub)

	server, err := b.serverFn(cfg.App, svc, hub)
	if err != nil {
		return nil, fmt.Errorf("build dashboard server: %w", err)
	}

	return &App{
		cfg:     cfg,
		monitor: svc,
		server:  server,
		Summary: newStartupSummary(cfg),
	}, nil
}
