package iphauthz

import "sync/atomic"

// MetricID identifies one Engine counter.
type MetricID uint16

const (
	// MetricSourceRead counts identity store reads of the roles record.
	MetricSourceRead MetricID = iota
	// MetricSourceAbsent counts reads that found no roles record.
	MetricSourceAbsent
	// MetricSourcePurge counts self-healing purges of a corrupt roles
	// record.
	MetricSourcePurge
	// MetricValidatorRun counts validation passes over a raw payload.
	MetricValidatorRun
	// MetricValidatorDropped counts role entries dropped at the element
	// level, summed across validation passes.
	MetricValidatorDropped
	// MetricCacheHit counts GetUserRoles calls answered from a fresh
	// cache entry.
	MetricCacheHit
	// MetricCacheMiss counts GetUserRoles calls that refreshed from the
	// store, whether by absence, expiry, or invalidation.
	MetricCacheMiss
	// MetricCacheInvalidate counts explicit invalidations, including
	// those performed inline by the write paths.
	MetricCacheInvalidate
	// MetricExternalValidation counts external role validation calls.
	MetricExternalValidation
	// MetricProfileRead counts profile record reads.
	MetricProfileRead
	// MetricSessionCleared counts full session teardowns.
	MetricSessionCleared
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics is a fixed set of in-process counters, padded to avoid false
// sharing on the hot path.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time copy of every counter.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a [Metrics] set. When disabled, Inc and Add are
// no-ops and Snapshot returns zeroes.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether counters are being recorded.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the counter.
func (m *Metrics) Inc(id MetricID) {
	m.Add(id, 1)
}

// Add adds delta to the counter.
func (m *Metrics) Add(id MetricID, delta uint64) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, delta)
}

// Get returns the current value of one counter.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricIDCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snap
}
