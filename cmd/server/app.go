package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/api-wrapper/internal/config"
	"github.com/phrazzld/api-wrapper/internal/platform/jsonplaceholder"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// One upstream client for the whole process lifetime
	postClient *jsonplaceholder.Client
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(_ context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := jsonplaceholder.NewClient(cfg.Upstream, logger.With("component", "jsonplaceholder"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upstream client: %w", err)
	}
	logger.Info("Upstream client initialized",
		"base_url", cfg.Upstream.BaseURL,
		"timeout_seconds", cfg.Upstream.TimeoutSeconds)

	return &application{
		config:     cfg,
		logger:     logger,
		postClient: client,
	}, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.postClient != nil {
		if err := app.postClient.Close(); err != nil {
			app.logger.Error("Error closing upstream client", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
