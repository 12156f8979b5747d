package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of a test.
// An empty value leaves the key effectively unset for the loader.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setupEnv(t, map[string]string{
		"APIWRAP_SERVER_PORT":                     "",
		"APIWRAP_SERVER_LOG_LEVEL":                "",
		"APIWRAP_SERVER_LOG_FILE":                 "",
		"APIWRAP_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "",
		"APIWRAP_UPSTREAM_BASE_URL":               "",
		"APIWRAP_UPSTREAM_TIMEOUT_SECONDS":        "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8000, cfg.Server.Port, "Default server port should be 8000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Empty(t, cfg.Server.LogFile, "No log file should be configured by default")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, DefaultUpstreamBaseURL, cfg.Upstream.BaseURL)
	assert.Equal(t, 10, cfg.Upstream.TimeoutSeconds, "Default upstream timeout should be 10 seconds")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	setupEnv(t, map[string]string{
		"APIWRAP_SERVER_PORT":              "9090",
		"APIWRAP_SERVER_LOG_LEVEL":         "debug",
		"APIWRAP_SERVER_LOG_FILE":          "/tmp/api-wrapper.log",
		"APIWRAP_UPSTREAM_BASE_URL":        "http://localhost:3000",
		"APIWRAP_UPSTREAM_TIMEOUT_SECONDS": "3",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "/tmp/api-wrapper.log", cfg.Server.LogFile)
	assert.Equal(t, "http://localhost:3000", cfg.Upstream.BaseURL)
	assert.Equal(t, 3, cfg.Upstream.TimeoutSeconds)
}

// TestLoadFromConfigFile verifies that a config.yaml in the working directory is read
// and that environment variables still take precedence over it.
func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte("server:\n  port: 7070\n  log_level: warn\nupstream:\n  timeout_seconds: 5\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	setupEnv(t, map[string]string{
		"APIWRAP_SERVER_PORT":              "",
		"APIWRAP_SERVER_LOG_LEVEL":         "error",
		"APIWRAP_UPSTREAM_TIMEOUT_SECONDS": "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "Port should come from the config file")
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should override the config file")
	assert.Equal(t, 5, cfg.Upstream.TimeoutSeconds)
}

// TestLoadFromDotEnv verifies that a .env file populates unset variables.
func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.Unsetenv("APIWRAP_SERVER_PORT"))
	t.Cleanup(func() { _ = os.Unsetenv("APIWRAP_SERVER_PORT") })
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APIWRAP_SERVER_PORT=6060\n"), 0o600))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"APIWRAP_SERVER_PORT": "999999",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"APIWRAP_SERVER_LOG_LEVEL": "invalid-level",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Malformed upstream URL",
			envVars: map[string]string{
				"APIWRAP_UPSTREAM_BASE_URL": "not a url",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Non-HTTP upstream scheme",
			envVars: map[string]string{
				"APIWRAP_UPSTREAM_BASE_URL": "ftp://example.com",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Negative upstream timeout",
			envVars: map[string]string{
				"APIWRAP_UPSTREAM_TIMEOUT_SECONDS": "-1",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Non-numeric port",
			envVars: map[string]string{
				"APIWRAP_SERVER_PORT": "eighty",
			},
			errorSubstring: "failed to unmarshal config",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
