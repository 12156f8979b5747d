// Package main implements the entry point for the API wrapper server, which
// relays post data from the JSONPlaceholder service over a small versioned
// HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/api-wrapper/internal/config"
	"github.com/phrazzld/api-wrapper/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("api-wrapper: %v", err)
	}
}

// run loads configuration, sets up logging and serves until the context is
// canceled or the process receives SIGINT/SIGTERM.
func run(ctx context.Context) error {
	cfg, l, err := initializeApp()
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up the structured logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_file_enabled", cfg.Server.LogFile != "",
		"upstream_base_url", cfg.Upstream.BaseURL,
		"upstream_timeout_seconds", cfg.Upstream.TimeoutSeconds)

	return cfg, l, nil
}
