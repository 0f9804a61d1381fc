package client

import (
	"sync/atomic"
	"time"
)

// Metrics tracks course API call metrics
type Metrics struct {
	Calls        int64 `json:"calls"`
	Errors       int64 `json:"errors"`
	LatencyNanos int64 `json:"latency_ns"`
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		Calls:        atomic.LoadInt64(&globalMetrics.Calls),
		Errors:       atomic.LoadInt64(&globalMetrics.Errors),
		LatencyNanos: atomic.LoadInt64(&globalMetrics.LatencyNanos),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.Calls, 0)
	atomic.StoreInt64(&globalMetrics.Errors, 0)
	atomic.StoreInt64(&globalMetrics.LatencyNanos, 0)
}

// recordCall records a course API call
func recordCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.Calls, 1)
	atomic.AddInt64(&globalMetrics.LatencyNanos, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.Errors, 1)
	}
}

// AverageLatency returns the average latency in milliseconds
func (m Metrics) AverageLatency() float64 {
	if m.Calls == 0 {
		return 0
	}
	avgNs := float64(m.LatencyNanos) / float64(m.Calls)
	return avgNs / 1e6
}

// ErrorRate returns the error rate as a percentage
func (m Metrics) ErrorRate() float64 {
	if m.Calls == 0 {
		return 0
	}
	return float64(m.Errors) / float64(m.Calls) * 100
}
