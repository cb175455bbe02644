// Package server runs the vault's HTTP transport.
//
// It owns the http.Server lifecycle: startup, OS signal handling, and
// graceful shutdown with a bounded drain period.
package server
