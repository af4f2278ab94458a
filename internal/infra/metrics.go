package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	opsTotal      atomic.Uint64
	apiErrors     atomic.Uint64
	networkErrors atomic.Uint64
	unclassified  atomic.Uint64
	opDurNs       atomic.Int64
	opDurCount    atomic.Uint64
}

// RecordOperation records one gateway call (place, status or cancel)
// with its duration.
func (m *Metrics) RecordOperation(dur time.Duration) {
	m.opsTotal.Add(1)
	m.opDurNs.Add(dur.Nanoseconds())
	m.opDurCount.Add(1)
}

// RecordAPIError records an exchange-side rejection.
func (m *Metrics) RecordAPIError() {
	m.apiErrors.Add(1)
}

// RecordNetworkError records a transport failure.
func (m *Metrics) RecordNetworkError() {
	m.networkErrors.Add(1)
}

// RecordUnknownError records an unclassifiable failure.
func (m *Metrics) RecordUnknownError() {
	m.unclassified.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	OperationsTotal uint64
	APIErrors       uint64
	NetworkErrors   uint64
	UnknownErrors   uint64
	AvgOperationNs  int64
	Timestamp       time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avg int64
	count := m.opDurCount.Load()
	if count > 0 {
		avg = m.opDurNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		OperationsTotal: m.opsTotal.Load(),
		APIErrors:       m.apiErrors.Load(),
		NetworkErrors:   m.networkErrors.Load(),
		UnknownErrors:   m.unclassified.Load(),
		AvgOperationNs:  avg,
		Timestamp:       time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.opsTotal.Store(0)
	m.apiErrors.Store(0)
	m.networkErrors.Store(0)
	m.unclassified.Store(0)
	m.opDurNs.Store(0)
	m.opDurCount.Store(0)
}
