package client

import (
	"sync"
	"time"
)

// ClientMetrics exposes client-side metrics for observability and monitoring.
type ClientMetrics interface {
	// GetRequestCount returns the total number of requests for the given operation type.
	GetRequestCount(operation string) uint64

	// GetSuccessCount returns the number of successful requests for the given operation type.
	GetSuccessCount(operation string) uint64

	// GetFailureCount returns the number of failed requests for the given operation type.
	GetFailureCount(operation string) uint64

	// GetSuccessRate returns the success rate (0.0 to 1.0) for the given operation type.
	GetSuccessRate(operation string) float64

	// GetAverageLatency returns the average latency for the given operation type.
	GetAverageLatency(operation string) time.Duration

	// GetMaxLatency returns the maximum observed latency for the given operation type.
	GetMaxLatency(operation string) time.Duration

	// Reset clears all collected metrics.
	Reset()
}

// Metrics is the internal recorder interface used by the client to
// collect per-operation counters and latencies.
type Metrics interface {
	ClientMetrics

	// IncrSuccess records a successful request for the operation.
	IncrSuccess(operation string)

	// IncrFailure records a failed request for the operation.
	IncrFailure(operation string)

	// ObserveLatency records the latency of one request for the operation.
	ObserveLatency(operation string, latency time.Duration)
}

// operationStats accumulates counters for a single operation type.
type operationStats struct {
	successes    uint64
	failures     uint64
	totalLatency time.Duration
	maxLatency   time.Duration
	observations uint64
}

// metricsImpl is the default mutex-backed Metrics implementation.
type metricsImpl struct {
	mu    sync.Mutex
	stats map[string]*operationStats
}

// newMetrics creates an empty metrics recorder.
func newMetrics() Metrics {
	return &metricsImpl{stats: make(map[string]*operationStats)}
}

func (m *metricsImpl) get(operation string) *operationStats {
	s, ok := m.stats[operation]
	if !ok {
		s = &operationStats{}
		m.stats[operation] = s
	}
	return s
}

func (m *metricsImpl) IncrSuccess(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(operation).successes++
}

func (m *metricsImpl) IncrFailure(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(operation).failures++
}

func (m *metricsImpl) ObserveLatency(operation string, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(operation)
	s.totalLatency += latency
	s.observations++
	if latency > s.maxLatency {
		s.maxLatency = latency
	}
}

func (m *metricsImpl) GetRequestCount(operation string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(operation)
	return s.successes + s.failures
}

func (m *metricsImpl) GetSuccessCount(operation string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(operation).successes
}

func (m *metricsImpl) GetFailureCount(operation string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(operation).failures
}

func (m *metricsImpl) GetSuccessRate(operation string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(operation)
	total := s.successes + s.failures
	if total == 0 {
		return 0
	}
	return float64(s.successes) / float64(total)
}

func (m *metricsImpl) GetAverageLatency(operation string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(operation)
	if s.observations == 0 {
		return 0
	}
	return s.totalLatency / time.Duration(s.observations)
}

func (m *metricsImpl) GetMaxLatency(operation string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(operation).maxLatency
}

func (m *metricsImpl) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = make(map[string]*operationStats)
}

// noOpMetrics discards all recordings. Used when metrics are disabled.
type noOpMetrics struct{}

func (noOpMetrics) IncrSuccess(string)                     {}
func (noOpMetrics) IncrFailure(string)                     {}
func (noOpMetrics) ObserveLatency(string, time.Duration)   {}
func (noOpMetrics) GetRequestCount(string) uint64          { return 0 }
func (noOpMetrics) GetSuccessCount(string) uint64          { return 0 }
func (noOpMetrics) GetFailureCount(string) uint64          { return 0 }
func (noOpMetrics) GetSuccessRate(string) float64          { return 0 }
func (noOpMetrics) GetAverageLatency(string) time.Duration { return 0 }
func (noOpMetrics) GetMaxLatency(string) time.Duration     { return 0 }
func (noOpMetrics) Reset()                                 {}
