// Package metrics tracks outbound calls to third-party services.
package metrics

import (
	"sync/atomic"
	"time"
)

// Upstream names the third-party service a call went to.
type Upstream int

const (
	Gamma Upstream = iota
	Email
	Slack
	LLM
	numUpstreams
)

func (u Upstream) String() string {
	switch u {
	case Gamma:
		return "gamma"
	case Email:
		return "email"
	case Slack:
		return "slack"
	case LLM:
		return "llm"
	default:
		return "unknown"
	}
}

type counters struct {
	upstreamCalls   int64
	upstreamErrors  int64
	upstreamLatency int64 // Total latency in nanoseconds
	perUpstream     [numUpstreams]int64
}

var global = &counters{}

// Metrics is a point-in-time copy of the counters.
type Metrics struct {
	UpstreamCalls   int64            `json:"upstream_calls"`
	UpstreamErrors  int64            `json:"upstream_errors"`
	UpstreamLatency time.Duration    `json:"-"`
	PerUpstream     map[string]int64 `json:"per_upstream"`
}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	m := Metrics{
		UpstreamCalls:   atomic.LoadInt64(&global.upstreamCalls),
		UpstreamErrors:  atomic.LoadInt64(&global.upstreamErrors),
		UpstreamLatency: time.Duration(atomic.LoadInt64(&global.upstreamLatency)),
		PerUpstream:     make(map[string]int64, numUpstreams),
	}
	for u := Upstream(0); u < numUpstreams; u++ {
		m.PerUpstream[u.String()] = atomic.LoadInt64(&global.perUpstream[u])
	}
	return m
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&global.upstreamCalls, 0)
	atomic.StoreInt64(&global.upstreamErrors, 0)
	atomic.StoreInt64(&global.upstreamLatency, 0)
	for u := range global.perUpstream {
		atomic.StoreInt64(&global.perUpstream[u], 0)
	}
}

// RecordUpstreamCall records one outbound call and whether it failed.
func RecordUpstreamCall(u Upstream, duration time.Duration, err error) {
	atomic.AddInt64(&global.upstreamCalls, 1)
	atomic.AddInt64(&global.upstreamLatency, duration.Nanoseconds())
	if u >= 0 && u < numUpstreams {
		atomic.AddInt64(&global.perUpstream[u], 1)
	}
	if err != nil {
		atomic.AddInt64(&global.upstreamErrors, 1)
	}
}

// AverageUpstreamLatency returns the average latency in milliseconds
func (m Metrics) AverageUpstreamLatency() float64 {
	if m.UpstreamCalls == 0 {
		return 0
	}
	avgNs := float64(m.UpstreamLatency.Nanoseconds()) / float64(m.UpstreamCalls)
	return avgNs / 1e6
}

// UpstreamErrorRate returns the error rate as a percentage
func (m Metrics) UpstreamErrorRate() float64 {
	if m.UpstreamCalls == 0 {
		return 0
	}
	return float64(m.UpstreamErrors) / float64(m.UpstreamCalls) * 100
}
