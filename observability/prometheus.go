// Package observability exports search metrics to Prometheus.
//
// PrometheusCollector implements search.MetricsCollector on top of
// client_golang; register it on any prometheus.Registerer and pass it to a
// search with search.WithMetrics.
package observability

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/search"
)

// Namespace prefixes every metric name.
const Namespace = "pairpath"

// Outcome label values of the searches counter.
const (
	OutcomeCompleted = "completed"
	OutcomePopLimit  = "pop_limit"
	OutcomeTimeLimit = "time_limit"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// PrometheusCollector records search activity as Prometheus metrics.
// Safe for concurrent use.
type PrometheusCollector struct {
	searches     *prometheus.CounterVec
	duration     prometheus.Histogram
	pops         prometheus.Counter
	pushed       prometheus.Counter
	pruned       prometheus.Counter
	ties         prometheus.Counter
	improvements prometheus.Counter
	bestCost     prometheus.Gauge
}

var _ search.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics on
// reg (prometheus.DefaultRegisterer if nil). It panics if a metric with the
// same name is already registered.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &PrometheusCollector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Searches run, by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of a search",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frontier_pops_total",
			Help:      "Partial paths popped from the frontier",
		}),
		pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frontier_pushes_total",
			Help:      "Partial paths pushed back on the frontier",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pruned_total",
			Help:      "Nodes and steps dropped against the cost bound",
		}),
		ties: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "ties_total",
			Help:      "Complete paths matching the best cost",
		}),
		improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "improvements_total",
			Help:      "New cost records",
		}),
		bestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_record_cost",
			Help:      "Cost of the most recent record",
		}),
	}
	reg.MustRegister(c.searches, c.duration, c.pops, c.pushed, c.pruned, c.ties, c.improvements, c.bestCost)

	return c
}

// RecordSearch implements search.MetricsCollector.
func (c *PrometheusCollector) RecordSearch(stats search.Stats, d time.Duration, err error) {
	c.searches.WithLabelValues(Outcome(err)).Inc()
	c.duration.Observe(d.Seconds())
	c.pops.Add(float64(stats.Pops))
	c.pushed.Add(float64(stats.Pushed))
	c.pruned.Add(float64(stats.Pruned))
	c.ties.Add(float64(stats.Ties))
}

// RecordImprovement implements search.MetricsCollector.
func (c *PrometheusCollector) RecordImprovement(cost cache.Cost) {
	c.improvements.Inc()
	c.bestCost.Set(cost)
}

// Outcome maps a search error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, search.ErrPopLimit):
		return OutcomePopLimit
	case errors.Is(err, search.ErrTimeLimit), errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeLimit
	case errors.Is(err, context.Canceled):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}
