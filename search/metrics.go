package search

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/pairpath/cache"
)

// MetricsCollector receives search metrics.
// Implement it to integrate with a monitoring system; see package
// observability for a Prometheus implementation.
type MetricsCollector interface {
	// RecordSearch is called once per Search / SearchParallel call.
	// err is nil when the frontier was exhausted.
	RecordSearch(stats Stats, duration time.Duration, err error)

	// RecordImprovement is called whenever a strictly cheaper complete path
	// is recorded. It may be called from several goroutines.
	RecordImprovement(cost cache.Cost)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(Stats, time.Duration, error) {}
func (NoopMetricsCollector) RecordImprovement(cache.Cost)             {}

// BasicMetricsCollector keeps in-memory totals. Safe for concurrent use.
type BasicMetricsCollector struct {
	Searches     atomic.Int64
	SearchErrors atomic.Int64
	TotalNanos   atomic.Int64
	Pops         atomic.Int64
	Pushed       atomic.Int64
	Pruned       atomic.Int64
	Improvements atomic.Int64
	lastCostBits atomic.Uint64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(stats Stats, duration time.Duration, err error) {
	b.Searches.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	b.Pops.Add(int64(stats.Pops))
	b.Pushed.Add(int64(stats.Pushed))
	b.Pruned.Add(int64(stats.Pruned))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordImprovement implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImprovement(cost cache.Cost) {
	b.Improvements.Add(1)
	b.lastCostBits.Store(math.Float64bits(cost))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	Searches     int64
	SearchErrors int64
	AvgNanos     int64
	Pops         int64
	Pushed       int64
	Pruned       int64
	Improvements int64
	LastCost     cache.Cost
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		Searches:     b.Searches.Load(),
		SearchErrors: b.SearchErrors.Load(),
		Pops:         b.Pops.Load(),
		Pushed:       b.Pushed.Load(),
		Pruned:       b.Pruned.Load(),
		Improvements: b.Improvements.Load(),
		LastCost:     math.Float64frombits(b.lastCostBits.Load()),
	}
	if s.Searches > 0 {
		s.AvgNanos = b.TotalNanos.Load() / s.Searches
	}

	return s
}
