// Package search_test provides small helpers shared across *_test.go files
// of this package.
package search_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
	"github.com/katalvlaran/pairpath/order"
	"github.com/katalvlaran/pairpath/search"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// feeds4 is the default instance size: 10 pairs, small enough for
	// exhaustive enumeration in milliseconds.
	feeds4 = 4

	// l1Tiny is the smallest accepted first-tier capacity.
	l1Tiny = 3

	// optimum4 is the best reachable cost for feeds4 and l1Tiny, whatever
	// the radius.
	optimum4 = 1.0

	// rowMajor4 is the cost of the row-major order for feeds4 and l1Tiny.
	rowMajor4 = 2.0

	// tiesAtOptimum4 is the number of complete radius-1 paths of cost
	// optimum4 reachable from the seed set.
	tiesAtOptimum4 = 69

	// unbounded stands for "no reference cost".
	unbounded = 1e9
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// tinyProblem returns the feeds4 / l1Tiny problem with the given radius and bound.
func tinyProblem(radius int, bound cache.Cost) search.Problem {
	return search.Problem{
		NumFeeds:  feeds4,
		EntrySize: cache.EntrySizeForL1(l1Tiny),
		MaxRadius: radius,
		Bound:     bound,
	}
}

// pathCost rescores path from scratch.
func pathCost(p search.Problem, path []domain.Pair) cache.Cost {
	m := cache.New(p.EntrySize)

	return order.ScorePairs(m, slices.Values(path), nil).Total
}

// Repeat runs fn n times as subtests.
func Repeat(t *testing.T, n int, fn func(t *testing.T, i int)) {
	t.Helper()
	for i := 0; i < n; i++ {
		i := i
		t.Run("", func(t *testing.T) { fn(t, i) })
	}
}

// lastRand always picks the last element of a bucket.
type lastRand struct{}

func (lastRand) Intn(n int) int { return n - 1 }
