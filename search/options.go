package search

import (
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
)

// DefaultPriorityWeight weighs path length against accumulated cost in the
// frontier priority. Above 1 the search favours finishing paths (which frees
// memory and tightens the bound) over greedy low-cost exploration; 1.3 keeps
// breadth at low depths in check.
const DefaultPriorityWeight = 1.3

// budgetCheckMask sets how often (in pops) the deadline and context are polled.
const budgetCheckMask = 1023

// Internal panic messages.
const (
	panicPriorityWeight = "search: WithPriorityWeight: weight must be finite and positive"
	panicWorkers        = "search: WithWorkers: workers must be at least 1"
	panicTimeLimit      = "search: WithTimeLimit: limit must be non-negative"
	panicMaxPops        = "search: WithMaxPops: limit must be non-negative"
)

// Options configures a search. Start from DefaultOptions and adjust with
// Option setters.
type Options struct {
	// Seed feeds the default tiebreak RNG (0 ⇒ DefaultSeed). SearchParallel
	// derives one stream per worker from it.
	Seed int64
	// Rand overrides the tiebreak source of Search. Ignored by SearchParallel.
	Rand RandSource

	// TiePolicy selects strict-improvement or exhaustive tie enumeration.
	TiePolicy TiePolicy
	// OnTie receives complete paths matching the best cost under EnumerateTies.
	// It may be called from several goroutines by SearchParallel, never concurrently.
	OnTie func(cost cache.Cost, path []domain.Pair)

	// PriorityWeight is the path-length weight of the frontier priority.
	PriorityWeight float64

	// TimeLimit stops the search once elapsed (0 = unlimited).
	TimeLimit time.Duration
	// MaxPops stops the search after that many frontier pops (0 = unlimited).
	MaxPops int

	// Workers is the number of goroutines used by SearchParallel.
	Workers int

	// Logger receives search progress; NoopLogger by default.
	Logger *Logger
	// Metrics receives per-search statistics; NoopMetricsCollector by default.
	Metrics MetricsCollector
}

// DefaultOptions returns the defaults: strict improvement, priority weight
// 1.3, DefaultSeed, no budget, one worker per CPU, no logging, no metrics.
func DefaultOptions() Options {
	return Options{
		Seed:           DefaultSeed,
		TiePolicy:      StrictImprovement,
		PriorityWeight: DefaultPriorityWeight,
		Workers:        runtime.NumCPU(),
		Logger:         NoopLogger(),
		Metrics:        NoopMetricsCollector{},
	}
}

// Option mutates Options. Setters panic only on nonsensical values.
type Option func(*Options)

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetricsCollector{}
	}

	return o
}

// WithOptions replaces the whole configuration.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithSeed seeds the default tiebreak RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects the tiebreak source used by Search.
func WithRand(r RandSource) Option {
	return func(o *Options) { o.Rand = r }
}

// WithTiePolicy selects the tie policy.
func WithTiePolicy(tp TiePolicy) Option {
	return func(o *Options) { o.TiePolicy = tp }
}

// WithOnTie registers the tied-path callback (EnumerateTies only).
func WithOnTie(fn func(cost cache.Cost, path []domain.Pair)) Option {
	return func(o *Options) { o.OnTie = fn }
}

// WithPriorityWeight sets the frontier's path-length weight.
// Panics unless w is finite and positive.
func WithPriorityWeight(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		panic(panicPriorityWeight)
	}

	return func(o *Options) { o.PriorityWeight = w }
}

// WithTimeLimit bounds wall-clock time. Panics on negative limits.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimit)
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithMaxPops bounds the number of frontier pops. Panics on negative limits.
func WithMaxPops(n int) Option {
	if n < 0 {
		panic(panicMaxPops)
	}

	return func(o *Options) { o.MaxPops = n }
}

// WithWorkers sets the SearchParallel worker count. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the progress logger.
func WithLogger(l *Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) { o.Metrics = m }
}
