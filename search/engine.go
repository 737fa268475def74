// Package search — branch-and-bound driver.
//
// Flow:
//  1. Build the cache model and the neighbor table once.
//  2. Seed the frontier with one node per symmetry class of start points.
//  3. Pop the highest-priority node (random tiebreak); drop it if its cost
//     already reaches the bound (costs never decrease along a path).
//  4. For every neighbor of its last step not on the path: score the
//     extension, drop it if it reaches the bound, record it if it completes
//     the domain, push it back otherwise.
//  5. Stop when the frontier empties or a budget runs out.
//
// The bound and the incumbent live in an incumbent value shared by all
// engines of one search, so the single-frontier and the seed-partitioned
// drivers run exactly the same loop.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
)

// incumbent is the shared best-so-far state. The bound is read without
// locking; it only ever decreases, through a compare-and-swap that requires
// strict improvement, so a stale read can delay pruning but never accept a
// worse path.
type incumbent struct {
	boundBits atomic.Uint64
	recorded  atomic.Bool

	mu    sync.Mutex
	found bool
	cost  cache.Cost
	path  []domain.Pair
}

func newIncumbent(bound cache.Cost) *incumbent {
	inc := &incumbent{}
	inc.boundBits.Store(math.Float64bits(bound))

	return inc
}

// bound returns the current cost to beat.
func (inc *incumbent) bound() cache.Cost {
	return math.Float64frombits(inc.boundBits.Load())
}

// tryLower lowers the bound to cost if cost is strictly below it.
func (inc *incumbent) tryLower(cost cache.Cost) bool {
	for {
		cur := inc.boundBits.Load()
		if !(cost < math.Float64frombits(cur)) {
			return false
		}
		if inc.boundBits.CompareAndSwap(cur, math.Float64bits(cost)) {
			inc.recorded.Store(true)
			return true
		}
	}
}

// claimFirst accepts a path matching the bound exactly when nothing has been
// recorded yet. Under EnumerateTies the bound starts one unit below the
// caller's, so the first path reaching it is a record, not a tie.
func (inc *incumbent) claimFirst(cost cache.Cost) bool {
	return cost == inc.bound() && inc.recorded.CompareAndSwap(false, true)
}

// store keeps path if it is the cheapest seen so far.
func (inc *incumbent) store(cost cache.Cost, path []domain.Pair) {
	inc.mu.Lock()
	defer inc.mu.Unlock()
	if !inc.found || cost < inc.cost {
		inc.found, inc.cost, inc.path = true, cost, path
	}
}

// result snapshots the incumbent.
func (inc *incumbent) result() Result {
	inc.mu.Lock()
	defer inc.mu.Unlock()
	if !inc.found {
		return Result{}
	}

	return Result{Found: true, Cost: inc.cost, Path: inc.path}
}

// engine runs one frontier. Engines of a parallel search share prob, model,
// table and inc; everything else is private.
type engine struct {
	prob       Problem
	opts       *Options
	model      *cache.Model
	table      *domain.NeighborTable
	inc        *incumbent
	pathLength int

	frontier *Frontier
	rng      RandSource
	log      *Logger
	tieMu    *sync.Mutex
	stats    Stats

	deadline time.Time
	traceOn  bool
	debugOn  bool
}

// setup builds the shared read-only state of a search.
func setup(p Problem, opts *Options) (*cache.Model, *domain.NeighborTable, *incumbent) {
	model := cache.New(p.EntrySize)
	table, err := domain.NewNeighborTable(p.NumFeeds, p.MaxRadius)
	if err != nil {
		// Problem.Validate already rejected these parameters.
		panic(err)
	}
	bound := p.Bound
	if opts.TiePolicy == EnumerateTies {
		bound -= tieBoundMargin
	}

	return model, table, newIncumbent(bound)
}

func newEngine(ctx context.Context, p Problem, opts *Options, model *cache.Model,
	table *domain.NeighborTable, inc *incumbent, rng RandSource, log *Logger,
	tieMu *sync.Mutex, start time.Time) *engine {
	e := &engine{
		prob:       p,
		opts:       opts,
		model:      model,
		table:      table,
		inc:        inc,
		pathLength: p.PathLength(),
		frontier:   NewFrontier(opts.PriorityWeight),
		rng:        rng,
		log:        log,
		tieMu:      tieMu,
		traceOn:    log.Enabled(ctx, LevelTrace),
		debugOn:    log.Enabled(ctx, slog.LevelDebug),
	}
	if opts.TimeLimit > 0 {
		e.deadline = start.Add(opts.TimeLimit)
	}

	return e
}

// seed pushes one node per start point.
func (e *engine) seed(starts []domain.Pair) {
	for _, s := range starts {
		e.frontier.Push(NewPartialPath(e.model, e.prob.NumFeeds, s))
		e.stats.Seeds++
	}
	e.stats.MaxFrontier = max(e.stats.MaxFrontier, e.frontier.Len())
}

// exceeds reports whether cost can no longer lead to an acceptable path.
func (e *engine) exceeds(cost, bound cache.Cost) bool {
	if e.opts.TiePolicy == EnumerateTies {
		return cost > bound
	}

	return cost >= bound
}

// checkBudget polls the caller-imposed limits between pops.
func (e *engine) checkBudget(ctx context.Context) error {
	if e.opts.MaxPops > 0 && e.stats.Pops >= e.opts.MaxPops {
		return ErrPopLimit
	}
	if e.stats.Pops&budgetCheckMask != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// run drains the frontier.
func (e *engine) run(ctx context.Context) error {
	for {
		if err := e.checkBudget(ctx); err != nil {
			return err
		}
		node, ok := e.frontier.Pop(e.rng)
		if !ok {
			return nil
		}
		e.stats.Pops++
		if e.traceOn {
			e.log.Log(ctx, LevelTrace, "currently on partial path",
				"path", node.path, "cost", node.CostSoFar())
		}

		if e.exceeds(node.CostSoFar(), e.inc.bound()) {
			e.stats.Pruned++
			continue
		}
		e.expand(ctx, node)
		e.stats.MaxFrontier = max(e.stats.MaxFrontier, e.frontier.Len())
	}
}

// expand scores every unvisited neighbor of node's last step.
func (e *engine) expand(ctx context.Context, node *PartialPath) {
	nextLen := node.Len() + 1
	for next := range e.table.Neighbors(node.LastStep()) {
		if node.Contains(next) {
			continue
		}
		cost, entries := node.EvaluateNextStep(e.model, next)
		e.stats.Evaluated++
		if e.exceeds(cost, e.inc.bound()) {
			e.stats.Pruned++
			if e.traceOn {
				e.log.Log(ctx, LevelTrace, "step exceeds cost goal",
					"step", next, "cost", cost, "len", nextLen, "path_length", e.pathLength)
			}
			continue
		}
		if nextLen == e.pathLength {
			e.complete(ctx, node, next, cost)
			continue
		}
		if e.traceOn {
			e.log.Log(ctx, LevelTrace, "step scheduled", "step", next, "cost", cost)
		}
		e.frontier.Push(node.CommitNextStep(next, cost, entries))
		e.stats.Pushed++
	}
}

// complete handles a path that covers the whole domain.
func (e *engine) complete(ctx context.Context, node *PartialPath, last domain.Pair, cost cache.Cost) {
	ties := e.opts.TiePolicy == EnumerateTies
	if e.inc.tryLower(cost) || (ties && e.inc.claimFirst(cost)) {
		path := node.FinishPath(last)
		e.inc.store(cost, path)
		e.stats.Records++
		e.opts.Metrics.RecordImprovement(cost)
		e.log.LogRecord(ctx, cost, path)
		return
	}
	if !ties || cost != e.inc.bound() {
		return
	}

	e.stats.Ties++
	if e.opts.OnTie == nil && !e.debugOn {
		return
	}
	path := node.FinishPath(last)
	e.log.LogTie(ctx, cost, path)
	if e.opts.OnTie != nil {
		e.tieMu.Lock()
		e.opts.OnTie(cost, path)
		e.tieMu.Unlock()
	}
}

// finish validates the incumbent and reports the search.
func finish(ctx context.Context, p Problem, opts *Options, inc *incumbent, stats Stats,
	start time.Time, err error) (Result, error) {
	res := inc.result()
	res.Stats = stats
	if res.Found {
		if verr := domain.ValidatePath(res.Path, p.NumFeeds, p.MaxRadius); verr != nil {
			panic(fmt.Errorf("search: produced an invalid path: %w", verr))
		}
	}
	opts.Metrics.RecordSearch(stats, time.Since(start), err)
	opts.Logger.LogDone(ctx, res, err)

	return res, err
}

// Search runs the branch-and-bound search on a single frontier.
//
// It panics if p is invalid (see Problem.Validate). A nil error with
// Result.Found == false means that no path strictly cheaper than p.Bound
// exists (or, under EnumerateTies, none at least one unit cheaper).
// On budget exhaustion (ctx, ErrTimeLimit, ErrPopLimit) the incumbent found
// so far is returned together with the error.
func Search(ctx context.Context, p Problem, opts ...Option) (Result, error) {
	p.mustValidate()
	o := gatherOptions(opts)
	start := time.Now()

	model, table, inc := setup(p, &o)
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}
	seeds := domain.Seeds(p.NumFeeds)
	o.Logger.LogGoal(ctx, p, model.L1Entries(), len(seeds), o.TiePolicy)

	e := newEngine(ctx, p, &o, model, table, inc, rng, o.Logger, &sync.Mutex{}, start)
	e.seed(seeds)
	err := e.run(ctx)

	return finish(ctx, p, &o, inc, e.stats, start, err)
}

// SearchBestPath looks for a path over the domain of numFeeds feeds that is
// strictly cheaper than bestCost, with default options. It panics on
// invalid parameters and reports false when no such path exists.
func SearchBestPath(numFeeds, entrySize, maxRadius int, bestCost cache.Cost) (Result, bool) {
	res, err := Search(context.Background(), Problem{
		NumFeeds:  numFeeds,
		EntrySize: entrySize,
		MaxRadius: maxRadius,
		Bound:     bestCost,
	})
	if err != nil {
		// No budget is configured and the context is never cancelled.
		panic(err)
	}

	return res, res.Found
}
