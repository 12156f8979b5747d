package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Get performs a GET request and returns the response. The body is closed
// when the test finishes.
func Get(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url) //nolint:gosec // test URL
	require.NoError(t, err, "GET %s should not fail", url)
	CleanupResponseBody(t, resp)

	return resp
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ReadBody reads the full response body.
func ReadBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return body
}

// DecodeJSON decodes the response body into v.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), "Failed to decode response body")
}

// AssertDetailResponse checks that a response has the expected status code and
// a JSON body of exactly {"detail": expectedDetail}.
func AssertDetailResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedDetail string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body map[string]any
	DecodeJSON(t, resp, &body)
	assert.Equal(t, map[string]any{"detail": expectedDetail}, body)
}
