// Package search — partial paths.
//
// The number of possible paths grows like the factorial of the domain size,
// so nodes are kept small and independent: each owns its path slice, its
// recency list and a bitset of visited domain indices. Extending a node
// clones all three; siblings never alias each other's state.
package search

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
)

// PartialPath is one search node. It is immutable once built.
type PartialPath struct {
	numFeeds int
	path     []domain.Pair
	visited  *bitset.BitSet // domain.Index of every step
	entries  cache.Entries
	cost     cache.Cost
}

// NewPartialPath starts a path at start. Both feeds of start are accessed
// on an empty recency list, which is free.
//
// Complexity: O(n²/64) for the visited bitset.
func NewPartialPath(m *cache.Model, numFeeds int, start domain.Pair) *PartialPath {
	pp := &PartialPath{
		numFeeds: numFeeds,
		path:     []domain.Pair{start},
		visited:  bitset.New(uint(domain.Size(numFeeds))),
		entries:  m.StartSimulation(),
	}
	pp.visited.Set(uint(domain.Index(numFeeds, start)))
	for _, feed := range start.Feeds() {
		pp.cost += m.SimulateAccess(&pp.entries, feed)
	}

	return pp
}

// Len returns the number of steps taken so far.
func (pp *PartialPath) Len() int { return len(pp.path) }

// LastStep returns the most recently appended pair.
func (pp *PartialPath) LastStep() domain.Pair { return pp.path[len(pp.path)-1] }

// CostSoFar returns the accumulated cache cost of the path.
func (pp *PartialPath) CostSoFar() cache.Cost { return pp.cost }

// Steps returns a copy of the path so far.
func (pp *PartialPath) Steps() []domain.Pair {
	out := make([]domain.Pair, len(pp.path))
	copy(out, pp.path)

	return out
}

// Contains reports whether the path already went through p.
//
// Complexity: O(1).
func (pp *PartialPath) Contains(p domain.Pair) bool {
	if !domain.Contains(pp.numFeeds, p) {
		return false
	}

	return pp.visited.Test(uint(domain.Index(pp.numFeeds, p)))
}

// EvaluateNextStep tells what the accumulated cost and the recency list
// would become if the path went on to next. pp is left untouched; the
// returned cost is never below CostSoFar.
//
// Complexity: O(k) for k feeds in the recency list.
func (pp *PartialPath) EvaluateNextStep(m *cache.Model, next domain.Pair) (cache.Cost, cache.Entries) {
	var (
		entries = pp.entries.Clone()
		cost    = pp.cost
	)
	for _, feed := range next.Feeds() {
		cost += m.SimulateAccess(&entries, feed)
	}

	return cost, entries
}

// CommitNextStep returns a new node extending pp by next, with the cost and
// recency list previously computed by EvaluateNextStep.
//
// Complexity: O(L + n²/64).
func (pp *PartialPath) CommitNextStep(next domain.Pair, cost cache.Cost, entries cache.Entries) *PartialPath {
	return &PartialPath{
		numFeeds: pp.numFeeds,
		path:     pp.extended(next),
		visited:  pp.visited.Clone().Set(uint(domain.Index(pp.numFeeds, next))),
		entries:  entries,
		cost:     cost,
	}
}

// FinishPath returns the complete path made of pp followed by last.
//
// Complexity: O(L).
func (pp *PartialPath) FinishPath(last domain.Pair) []domain.Pair {
	return pp.extended(last)
}

// extended copies the path with one more step.
func (pp *PartialPath) extended(step domain.Pair) []domain.Pair {
	out := make([]domain.Pair, len(pp.path)+1)
	copy(out, pp.path)
	out[len(pp.path)] = step

	return out
}
