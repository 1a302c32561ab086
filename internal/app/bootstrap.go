package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"marketlens/internal/catalog"
	"marketlens/internal/config"
	"marketlens/internal/server"
	"marketlens/internal/upstream"
	"marketlens/pkg/logging"
)

// Application is the assembled server: configuration, upstream client,
// catalog and MCP dispatch, ready to Run.
type Application struct {
	cfg       config.Config
	configDir string
	client    *upstream.Client
	registry  *catalog.Registry
	server    *server.Server
}

// NewApplication performs the bootstrap sequence: logging, configuration,
// upstream client, catalog registry, MCP server.
func NewApplication(appCfg *Config) (*Application, error) {
	var cfg config.Config
	if appCfg.Loaded != nil {
		cfg = *appCfg.Loaded
	} else {
		loaded, err := config.Load(appCfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	appCfg.applyOverrides(&cfg)

	initLogging(appCfg, cfg)

	if cfg.Upstream.APIKey == "" {
		logging.Warn("Bootstrap", "No API key configured; upstream requests will be rejected")
	}

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout.Std())

	registry, err := catalog.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	invoker := catalog.NewInvoker(client)
	srv := server.New(cfg.Server, registry, invoker)

	return &Application{
		cfg:       cfg,
		configDir: appCfg.ConfigPath,
		client:    client,
		registry:  registry,
		server:    srv,
	}, nil
}

func initLogging(appCfg *Config, cfg config.Config) {
	level := logging.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}

	// Stdout belongs to the protocol on the stdio transport, so logs
	// always go to stderr.
	var output io.Writer = os.Stderr
	if appCfg.Silent {
		output = io.Discard
	}
	logging.Init(level, output)
}

// Endpoint returns the address the server is reachable on.
func (a *Application) Endpoint() string {
	return a.server.Endpoint()
}

// Run starts the server and blocks until ctx is cancelled. Alongside the
// transport it runs a config watcher so a rotated API key is picked up
// without a restart.
func (a *Application) Run(ctx context.Context) error {
	if err := a.server.Start(ctx); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logging.Info("Bootstrap", "marketlens serving %d tools on %s", len(a.registry.Tools()), a.server.Endpoint())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.watchConfig(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.server.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
