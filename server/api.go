package server

import (
	"context"

	pb "github.com/giansalex/cw-lockbox/proto"
)

// LockboxServer defines the interface for a gRPC-fronted lockbox service.
// It validates incoming requests, applies rate limiting, and delegates the
// custody semantics to the lockbox engine.
type LockboxServer interface {
	pb.LockboxServer

	// Start binds the listen address and begins serving gRPC requests.
	//
	// Returns an error if initialization fails (e.g., port conflict).
	Start(ctx context.Context) error

	// Stop gracefully shuts down the gRPC server.
	// The provided context can set a deadline for shutdown.
	Stop(ctx context.Context) error

	// Metrics returns current metrics for observability and monitoring.
	Metrics() ServerMetrics
}
