package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts redraw work. Frames are recorded on the main loop;
// reload requests may be recorded from the watcher goroutine.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	reloads   atomic.Uint64
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time one Update took.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordReload records a rule or scheme reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:   m.frameCount.Load(),
		MaxFrame: time.Duration(m.frameMaxNs.Load()),
		Reloads:  m.reloads.Load(),
		Uptime:   time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.AvgFrame = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
	}
	return s
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames   uint64
	AvgFrame time.Duration
	MaxFrame time.Duration
	Reloads  uint64
	Uptime   time.Duration
}
