// Package jsonplaceholder provides the client for the upstream posts API
// (JSONPlaceholder by default).
//
// This package is an infrastructure adapter: it owns the single pooled HTTP
// client used to reach the upstream host and normalizes every upstream outcome
// into one of three shapes the HTTP layer understands:
//
//   - a decoded JSON document or array (success)
//   - ErrPostNotFound (the upstream reported the requested post missing)
//   - an *UpstreamError wrapping ErrUpstream (any other status, transport
//     failure, timeout, or undecodable body)
//
// Posts are relayed as raw JSON. The adapter never inspects their fields, so
// whatever shape the upstream returns reaches callers unchanged.
//
// A Client is created once at startup, shared by all request handlers, and
// closed once at shutdown. Each fetch issues exactly one GET; nothing is retried
// or cached.
package jsonplaceholder
