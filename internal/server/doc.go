// Package server runs the development API over HTTP.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
