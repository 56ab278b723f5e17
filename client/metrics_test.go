package client

import (
	"testing"
	"time"

	"github.com/giansalex/cw-lockbox/testutil"
)

func TestMetricsIncrSuccess(t *testing.T) {
	m := newMetrics()

	m.IncrSuccess("create_lock")
	testutil.AssertEqual(t, uint64(1), m.GetRequestCount("create_lock"))
	testutil.AssertEqual(t, uint64(1), m.GetSuccessCount("create_lock"))
	testutil.AssertEqual(t, uint64(0), m.GetFailureCount("create_lock"))

	m.IncrSuccess("create_lock")
	testutil.AssertEqual(t, uint64(2), m.GetRequestCount("create_lock"))

	m.IncrSuccess("release")
	testutil.AssertEqual(t, uint64(1), m.GetRequestCount("release"))
}

func TestMetricsIncrFailure(t *testing.T) {
	m := newMetrics()

	m.IncrFailure("release")
	testutil.AssertEqual(t, uint64(1), m.GetRequestCount("release"))
	testutil.AssertEqual(t, uint64(0), m.GetSuccessCount("release"))
	testutil.AssertEqual(t, uint64(1), m.GetFailureCount("release"))
}

func TestMetricsSuccessRate(t *testing.T) {
	m := newMetrics()

	testutil.AssertEqual(t, 0.0, m.GetSuccessRate("cancel"))

	m.IncrSuccess("cancel")
	m.IncrSuccess("cancel")
	testutil.AssertEqual(t, 1.0, m.GetSuccessRate("cancel"))

	m.IncrFailure("cancel")
	testutil.AssertEqual(t, 2.0/3.0, m.GetSuccessRate("cancel"))
}

func TestMetricsObserveLatency(t *testing.T) {
	m := newMetrics()

	testutil.AssertEqual(t, time.Duration(0), m.GetAverageLatency("get_lock"))
	testutil.AssertEqual(t, time.Duration(0), m.GetMaxLatency("get_lock"))

	m.ObserveLatency("get_lock", 100*time.Millisecond)
	testutil.AssertEqual(t, 100*time.Millisecond, m.GetAverageLatency("get_lock"))
	testutil.AssertEqual(t, 100*time.Millisecond, m.GetMaxLatency("get_lock"))

	m.ObserveLatency("get_lock", 200*time.Millisecond)
	testutil.AssertEqual(t, 150*time.Millisecond, m.GetAverageLatency("get_lock"))
	testutil.AssertEqual(t, 200*time.Millisecond, m.GetMaxLatency("get_lock"))

	m.ObserveLatency("get_lock", 50*time.Millisecond)
	testutil.AssertEqual(t, 200*time.Millisecond, m.GetMaxLatency("get_lock"))
}

func TestMetricsReset(t *testing.T) {
	m := newMetrics()

	m.IncrSuccess("create_lock")
	m.IncrFailure("create_lock")
	m.ObserveLatency("create_lock", 100*time.Millisecond)

	m.Reset()
	testutil.AssertEqual(t, uint64(0), m.GetRequestCount("create_lock"))
	testutil.AssertEqual(t, time.Duration(0), m.GetAverageLatency("create_lock"))
}

func TestNoOpMetrics(t *testing.T) {
	m := noOpMetrics{}

	m.IncrSuccess("create_lock")
	m.IncrFailure("create_lock")
	m.ObserveLatency("create_lock", time.Millisecond)
	m.Reset()

	testutil.AssertEqual(t, uint64(0), m.GetRequestCount("create_lock"))
	testutil.AssertEqual(t, 0.0, m.GetSuccessRate("create_lock"))
	testutil.AssertEqual(t, time.Duration(0), m.GetMaxLatency("create_lock"))
}
