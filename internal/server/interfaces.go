package server

import "context"

// Server defines the lifecycle contract of the development API server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
