package jsonplaceholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/phrazzld/api-wrapper/internal/config"
)

// Post is a single upstream post document, relayed without interpretation.
type Post = json.RawMessage

const (
	postsPath      = "posts"
	userIDParam    = "userId"
	maxDrainBytes  = 64 << 10
	acceptJSONType = "application/json"
)

// Client issues requests against the upstream posts API.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// baseURL is the upstream root every request path is joined onto
	baseURL *url.URL

	// httpClient holds the pooled transport shared by all requests
	httpClient *http.Client

	closed atomic.Bool
}

// NewClient creates a Client bound to cfg.BaseURL with a per-request timeout
// of cfg.TimeoutSeconds.
//
// Parameters:
//   - cfg: upstream configuration containing the base URL and timeout
//   - logger: a structured logger for request logging
//
// Returns:
//   - A ready Client or an error wrapping ErrInvalidConfig
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", ErrInvalidConfig)
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse base URL: %v", ErrInvalidConfig, err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL must use http or https", ErrInvalidConfig)
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("%w: base URL must have a host", ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &Client{
		logger:     logger,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// FetchPosts returns every post the upstream lists.
// Any non-2xx status is an upstream fault.
func (c *Client) FetchPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.get(ctx, "fetch posts", []string{postsPath}, nil, false, &posts); err != nil {
		return nil, err
	}
	return nonNil(posts), nil
}

// FetchPost returns the post with the given ID. An upstream 404 yields
// ErrPostNotFound; any other non-2xx status is an upstream fault.
func (c *Client) FetchPost(ctx context.Context, id int) (Post, error) {
	var post Post
	path := []string{postsPath, strconv.Itoa(id)}
	if err := c.get(ctx, "fetch post", path, nil, true, &post); err != nil {
		return nil, err
	}
	return post, nil
}

// FetchUserPosts returns the posts whose owner is userID. An empty result is
// not an error. Any non-2xx status, 404 included, is an upstream fault.
func (c *Client) FetchUserPosts(ctx context.Context, userID int) ([]Post, error) {
	var posts []Post
	query := url.Values{userIDParam: []string{strconv.Itoa(userID)}}
	if err := c.get(ctx, "fetch user posts", []string{postsPath}, query, false, &posts); err != nil {
		return nil, err
	}
	return nonNil(posts), nil
}

// Close releases the pooled connections. It must be called once; later calls
// and any fetch issued after Close return ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	c.httpClient.CloseIdleConnections()
	c.logger.Info("upstream client closed", "base_url", c.baseURL.Redacted())
	return nil
}

// get performs one GET against the upstream and decodes a 2xx JSON body into out.
// When notFoundIsAbsent is set, a 404 maps to ErrPostNotFound.
func (c *Client) get(
	ctx context.Context,
	op string,
	path []string,
	query url.Values,
	notFoundIsAbsent bool,
	out any,
) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	u := c.baseURL.JoinPath(path...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", acceptJSONType)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "upstream request failed",
			"op", op,
			"url", u.Redacted(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return &UpstreamError{Op: op, Err: err}
	}
	defer func() {
		// Drain so the connection can return to the pool
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		_ = resp.Body.Close()
	}()

	c.logger.DebugContext(ctx, "upstream request completed",
		"op", op,
		"url", u.Redacted(),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusNotFound && notFoundIsAbsent {
		return ErrPostNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response body: %w", err),
		}
	}

	return nil
}

// IsEmpty reports whether a post document carries no content: missing,
// JSON null, or an empty object.
func IsEmpty(post Post) bool {
	var compact bytes.Buffer
	if err := json.Compact(&compact, post); err != nil {
		return len(bytes.TrimSpace(post)) == 0
	}
	switch compact.String() {
	case "", "null", "{}":
		return true
	default:
		return false
	}
}

func nonNil(posts []Post) []Post {
	if posts == nil {
		return []Post{}
	}
	return posts
}
