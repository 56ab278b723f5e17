package lockbox

import "time"

// Time
const (
	// DefaultMaxLockDuration is the default upper bound on how far in the
	// future a time release condition may lie.
	DefaultMaxLockDuration = 365 * 24 * time.Hour

	// MinLockDuration is the smallest meaningful lock duration; conditions
	// closer than this to the current block time are still accepted, the
	// bound only protects option setters from nonsense values.
	MinLockDuration = time.Second
)

// Height
const (
	// DefaultMaxLockHeightDelta is the default upper bound on how many
	// blocks ahead a height release condition may lie.
	DefaultMaxLockHeightDelta = 10_000_000
)
