package lockbox

import (
	"time"

	"github.com/giansalex/cw-lockbox/types"
)

// Metrics defines the interface for recording lock lifecycle measurements.
// All methods must be safe for concurrent use.
type Metrics interface {
	// IncrCreateRequest increments counters for lock creations.
	IncrCreateRequest(token types.TokenID, success bool)

	// IncrReleaseRequest increments counters for release attempts.
	IncrReleaseRequest(lockID types.LockID, success bool)

	// IncrCancelRequest increments counters for cancel attempts.
	IncrCancelRequest(lockID types.LockID, success bool)

	// ObserveCustodyDuration records how long funds were custodied before the
	// terminal transition. `released` is true for Release, false for Cancel.
	ObserveCustodyDuration(lockID types.LockID, held time.Duration, released bool)

	// SetActiveLocks sets the current number of locks with status Locked.
	SetActiveLocks(count int)

	// Reset clears all metrics.
	Reset()
}

// NoOpMetrics is a Metrics implementation that discards all measurements.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics implementation that does nothing.
func NewNoOpMetrics() Metrics { return &NoOpMetrics{} }

func (m *NoOpMetrics) IncrCreateRequest(token types.TokenID, success bool)  {}
func (m *NoOpMetrics) IncrReleaseRequest(lockID types.LockID, success bool) {}
func (m *NoOpMetrics) IncrCancelRequest(lockID types.LockID, success bool)  {}
func (m *NoOpMetrics) ObserveCustodyDuration(lockID types.LockID, held time.Duration, released bool) {
}
func (m *NoOpMetrics) SetActiveLocks(count int) {}
func (m *NoOpMetrics) Reset()                   {}
