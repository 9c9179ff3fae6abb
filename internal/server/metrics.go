package server

import (
	"sync/atomic"
	"time"

	"github.com/nareshv/http-server/internal/response"
)

// Metrics holds server runtime counters. All fields are updated with
// atomics; workers never share any other mutable state.
type Metrics struct {
	RequestsTotal     atomic.Int64
	ActiveConnections atomic.Int64
	Errors4xx         atomic.Int64
	Errors5xx         atomic.Int64

	// Latency tracking (simplified - use histogram in production)
	TotalLatencyNs atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ConnOpened records an accepted connection.
func (m *Metrics) ConnOpened() {
	m.ActiveConnections.Add(1)
}

// ConnClosed records a finished connection.
func (m *Metrics) ConnClosed() {
	m.ActiveConnections.Add(-1)
}

// RecordRequest records a completed request
func (m *Metrics) RecordRequest(status response.StatusCode, duration time.Duration) {
	m.RequestsTotal.Add(1)
	m.TotalLatencyNs.Add(duration.Nanoseconds())

	if status >= 400 && status < 500 {
		m.Errors4xx.Add(1)
	} else if status >= 500 {
		m.Errors5xx.Add(1)
	}
}

// AverageLatency returns average request latency
func (m *Metrics) AverageLatency() time.Duration {
	totalReqs := m.RequestsTotal.Load()
	if totalReqs == 0 {
		return 0
	}
	return time.Duration(m.TotalLatencyNs.Load() / totalReqs)
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	RequestsTotal     int64
	ActiveConnections int64
	Errors4xx         int64
	Errors5xx         int64
	AverageLatency    time.Duration
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:     m.RequestsTotal.Load(),
		ActiveConnections: m.ActiveConnections.Load(),
		Errors4xx:         m.Errors4xx.Load(),
		Errors5xx:         m.Errors5xx.Load(),
		AverageLatency:    m.AverageLatency(),
	}
}
