package lockbox

import (
	"testing"
	"time"

	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start, 100)

	testutil.AssertEqual(t, start, clock.Now())
	testutil.AssertEqual(t, types.BlockHeight(100), clock.Height())

	clock.Advance(time.Minute)
	testutil.AssertEqual(t, start.Add(time.Minute), clock.Now())

	clock.AdvanceHeight(5)
	testutil.AssertEqual(t, types.BlockHeight(105), clock.Height())

	pinned := start.Add(time.Hour)
	clock.SetNow(pinned)
	testutil.AssertEqual(t, pinned, clock.Now())
}

func TestHostClock(t *testing.T) {
	clock := NewHostClock(42)
	testutil.AssertEqual(t, types.BlockHeight(42), clock.Height())

	clock.AdvanceHeight(8)
	testutil.AssertEqual(t, types.BlockHeight(50), clock.Height())

	before := time.Now()
	now := clock.Now()
	if now.Before(before.Add(-time.Second)) {
		t.Errorf("HostClock.Now() drifted backwards: %v < %v", now, before)
	}
}
