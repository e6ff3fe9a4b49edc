// Package server runs the relay's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
