package server

import "context"

// Server defines the lifecycle contract for the status server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Addr returns the address the server listens on.
	Addr() string
}
