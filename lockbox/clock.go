package lockbox

import (
	"sync/atomic"
	"time"

	"github.com/giansalex/cw-lockbox/types"
)

// Clock models the host collaborator's read-only view of ledger time.
// Both axes must be monotonic; a host reporting a lower value than
// previously observed violates its own invariant and is not handled here.
type Clock interface {
	// Now returns the current block time.
	Now() time.Time

	// Height returns the current block height.
	Height() types.BlockHeight
}

// HostClock is a Clock backed by the wall clock, with an externally advanced
// height. Suitable for binaries where the host feeds block heights in.
type HostClock struct {
	height atomic.Uint64
}

// NewHostClock returns a HostClock starting at the given height.
func NewHostClock(height types.BlockHeight) *HostClock {
	c := &HostClock{}
	c.height.Store(uint64(height))
	return c
}

// Now returns the current wall-clock time.
func (c *HostClock) Now() time.Time { return time.Now() }

// Height returns the last height set or advanced to.
func (c *HostClock) Height() types.BlockHeight {
	return types.BlockHeight(c.height.Load())
}

// AdvanceHeight increments the height by n blocks.
func (c *HostClock) AdvanceHeight(n uint64) {
	c.height.Add(n)
}

// ManualClock is a fully controlled Clock for deterministic tests and
// single-process hosts.
type ManualClock struct {
	now    time.Time
	height types.BlockHeight
}

// NewManualClock returns a ManualClock fixed at the given time and height.
func NewManualClock(now time.Time, height types.BlockHeight) *ManualClock {
	return &ManualClock{now: now, height: height}
}

// Now returns the manually set block time.
func (c *ManualClock) Now() time.Time { return c.now }

// Height returns the manually set block height.
func (c *ManualClock) Height() types.BlockHeight { return c.height }

// Advance moves the block time forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// AdvanceHeight moves the block height forward by n blocks.
func (c *ManualClock) AdvanceHeight(n uint64) { c.height += types.BlockHeight(n) }

// SetNow pins the block time to t.
func (c *ManualClock) SetNow(t time.Time) { c.now = t }
