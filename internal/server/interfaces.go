package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}
