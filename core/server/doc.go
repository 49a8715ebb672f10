// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listening port, the optional API key and the short-lived caching hints the
// dashboard attaches to its responses.
//
// # Usage
//
// This package is embedded by core/config and read by feature handlers to render
// the Cache-Control header.
package server
