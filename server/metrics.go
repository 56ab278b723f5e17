package server

import (
	"time"

	pb "github.com/giansalex/cw-lockbox/proto"
)

// ServerMetrics defines observability hooks for lockbox server operations.
// Metrics cover the gRPC lifecycle, validation, error types, and connection
// health. All methods must be safe for concurrent use.
type ServerMetrics interface {
	// IncrGRPCRequest increments the count for an RPC method invocation.
	// 'method' should match a Lockbox RPC (e.g., "CreateLock", "Release").
	// 'success' should reflect overall success from the client's perspective.
	IncrGRPCRequest(method string, success bool)

	// IncrValidationError increments validation failure counters.
	// 'method' is the RPC where validation failed.
	// 'errorType' is a string like "missing_field", "too_long" or "out_of_range".
	IncrValidationError(method string, errorType string)

	// IncrClientError increments counts for errors caused by invalid client
	// input or actions, keyed by the ErrorCode returned to the client.
	IncrClientError(method string, errorCode pb.ErrorCode)

	// IncrServerError increments counts for internal server-side errors.
	// 'errorType' might include values like "internal_error" or "timeout".
	IncrServerError(method string, errorType string)

	// IncrRateLimited increments a counter when a request is rejected by the
	// rate limiter.
	IncrRateLimited(method string)

	// ObserveRequestLatency records end-to-end latency for a gRPC method call.
	// This includes validation, engine work, and response formatting.
	ObserveRequestLatency(method string, latency time.Duration)

	// IncrConcurrentRequests adjusts the count of concurrently active requests.
	// Use delta +1 at request start, -1 when completed.
	IncrConcurrentRequests(method string, delta int)

	// SetActiveConnections sets the number of live gRPC connections to this server.
	SetActiveConnections(count int)

	// Reset clears all metric counters and resets gauges.
	// Useful primarily in unit or integration tests.
	Reset()
}

// NoOpServerMetrics provides a no-operation implementation of ServerMetrics.
// All methods are empty and safe for concurrent use.
type NoOpServerMetrics struct{}

// NewNoOpServerMetrics creates a new no-operation metrics implementation.
func NewNoOpServerMetrics() ServerMetrics {
	return &NoOpServerMetrics{}
}

func (n *NoOpServerMetrics) IncrGRPCRequest(method string, success bool)                {}
func (n *NoOpServerMetrics) IncrValidationError(method string, errorType string)        {}
func (n *NoOpServerMetrics) IncrClientError(method string, errorCode pb.ErrorCode)      {}
func (n *NoOpServerMetrics) IncrServerError(method string, errorType string)            {}
func (n *NoOpServerMetrics) IncrRateLimited(method string)                              {}
func (n *NoOpServerMetrics) ObserveRequestLatency(method string, latency time.Duration) {}
func (n *NoOpServerMetrics) IncrConcurrentRequests(method string, delta int)            {}
func (n *NoOpServerMetrics) SetActiveConnections(count int)                             {}
func (n *NoOpServerMetrics) Reset()                                                     {}
