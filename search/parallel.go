package search

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pairpath/domain"
)

// SearchParallel runs the same branch-and-bound as Search with the seeds
// partitioned round-robin across Options.Workers goroutines.
//
// Each worker owns its frontier and an RNG stream derived from Options.Seed
// (Options.Rand is ignored). The bound is shared: workers read it without
// locking and lower it by compare-and-swap on strict improvement only, so
// the optimal cost matches Search. Options.MaxPops applies per worker; the
// first worker to exhaust a budget cancels the others.
//
// It panics if p is invalid (see Problem.Validate).
func SearchParallel(ctx context.Context, p Problem, opts ...Option) (Result, error) {
	p.mustValidate()
	o := gatherOptions(opts)
	start := time.Now()

	model, table, inc := setup(p, &o)
	seeds := domain.Seeds(p.NumFeeds)
	workers := max(1, min(o.Workers, len(seeds)))
	o.Logger.LogGoal(ctx, p, model.L1Entries(), len(seeds), o.TiePolicy)

	parts := make([][]domain.Pair, workers)
	for i, s := range seeds {
		parts[i%workers] = append(parts[i%workers], s)
	}

	var (
		base    = rngFromSeed(o.Seed)
		engines = make([]*engine, workers)
		tieMu   = &sync.Mutex{}
	)
	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		e := newEngine(gctx, p, &o, model, table, inc,
			deriveRNG(base, uint64(w)), o.Logger.WithWorker(w), tieMu, start)
		e.seed(parts[w])
		engines[w] = e
		g.Go(func() error {
			err := e.run(gctx)
			e.log.DebugContext(gctx, "worker done",
				"seeds", e.stats.Seeds,
				"pops", e.stats.Pops,
				"records", e.stats.Records,
			)
			return err
		})
	}
	err := g.Wait()

	var stats Stats
	for _, e := range engines {
		stats.add(e.stats)
	}

	return finish(ctx, p, &o, inc, stats, start, err)
}
