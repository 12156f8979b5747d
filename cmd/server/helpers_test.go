package main

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/api-wrapper/internal/config"
	"github.com/phrazzld/api-wrapper/internal/platform/logger"
	"github.com/phrazzld/api-wrapper/internal/testutils"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration pointing at upstreamURL.
func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8000,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 5,
		},
		Upstream: config.UpstreamConfig{
			BaseURL:        upstreamURL,
			TimeoutSeconds: 2,
		},
	}
}

// newTestApp builds an application wired to a fake upstream.
func newTestApp(t *testing.T) (*application, *testutils.FakeUpstream, *logger.TestLogBuffer) {
	t.Helper()

	buf, log := logger.SetupTestLogger(t)
	upstream := testutils.NewFakeUpstream(t)

	app, err := newApplication(context.Background(), testConfig(upstream.URL()), log)
	require.NoError(t, err)

	return app, upstream, buf
}

// newTestServer serves the application router over a real listener.
func newTestServer(t *testing.T, app *application) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _ = app.postClient.Close() })

	return srv
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
