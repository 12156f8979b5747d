// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, environment
// variables). It provides type-safe access to the server and upstream
// settings while keeping configuration details separate from request
// handling.
package config
