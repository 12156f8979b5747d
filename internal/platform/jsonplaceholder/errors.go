package jsonplaceholder

import (
	"errors"
	"fmt"
)

// Error definitions for the jsonplaceholder package.
var (
	// ErrPostNotFound is returned when the upstream answers 404 for a single post.
	ErrPostNotFound = errors.New("post not found")

	// ErrUpstream is matched by every upstream fault.
	ErrUpstream = errors.New("upstream request failed")

	// ErrClientClosed is returned by any call made after Close.
	ErrClientClosed = errors.New("upstream client is closed")
)

// UpstreamError describes a failed upstream call.
type UpstreamError struct {
	// Op is the client operation that failed, e.g. "fetch posts".
	Op string
	// StatusCode is the upstream HTTP status, or 0 when no response was received.
	StatusCode int
	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: upstream returned status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + ErrUpstream.Error()
	}
}

// Unwrap exposes the underlying cause.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes every UpstreamError match ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// ErrInvalidConfig is returned by NewClient when the upstream settings are unusable.
var ErrInvalidConfig = errors.New("invalid upstream configuration")
