package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
)

// Contract violations (Search panics with these; Problem.Validate returns them).
var (
	// ErrNumFeeds indicates fewer than two feeds.
	ErrNumFeeds = errors.New("search: number of feeds must be greater than 1")
	// ErrEntrySize indicates a non-positive entry size.
	ErrEntrySize = errors.New("search: entry size must be positive")
	// ErrRadius indicates a step radius below 1.
	ErrRadius = errors.New("search: max radius must be at least 1")
	// ErrBound indicates a non-positive (or NaN) cost bound.
	ErrBound = errors.New("search: cost bound must be positive")
	// ErrCacheTooSmall indicates an L1 tier holding fewer than three entries.
	ErrCacheTooSmall = errors.New("search: cache is unreasonably small")
)

// Budget exhaustion (returned with the incumbent, if any).
var (
	// ErrTimeLimit is returned when Options.TimeLimit elapsed before the frontier emptied.
	ErrTimeLimit = errors.New("search: time limit exceeded")
	// ErrPopLimit is returned when Options.MaxPops nodes were popped before the frontier emptied.
	ErrPopLimit = errors.New("search: pop limit exceeded")
)

// Problem describes one search instance.
type Problem struct {
	// NumFeeds is the number of feeds; the domain has NumFeeds·(NumFeeds+1)/2 pairs.
	NumFeeds int
	// EntrySize is the size of one feed in bytes; it sets the cache tier capacities.
	EntrySize int
	// MaxRadius bounds |x-x'| and |y-y'| between consecutive steps.
	MaxRadius int
	// Bound is the cost to beat. Only strictly cheaper paths are sought;
	// pass a very large value for an unconstrained search.
	Bound cache.Cost
}

// Validate checks the problem preconditions.
//
// Complexity: O(1).
func (p Problem) Validate() error {
	if p.NumFeeds <= 1 {
		return fmt.Errorf("%w: got %d", ErrNumFeeds, p.NumFeeds)
	}
	if p.EntrySize <= 0 {
		return fmt.Errorf("%w: got %d", ErrEntrySize, p.EntrySize)
	}
	if p.MaxRadius < 1 {
		return fmt.Errorf("%w: got %d", ErrRadius, p.MaxRadius)
	}
	if math.IsNaN(p.Bound) || p.Bound <= 0 {
		return fmt.Errorf("%w: got %v", ErrBound, p.Bound)
	}
	if l1 := cache.New(p.EntrySize).L1Entries(); l1 < cache.MinUsefulL1Entries {
		return fmt.Errorf("%w: %d L1 entries, need at least %d", ErrCacheTooSmall, l1, cache.MinUsefulL1Entries)
	}

	return nil
}

// mustValidate fails fast on caller bugs.
func (p Problem) mustValidate() {
	if err := p.Validate(); err != nil {
		panic(err)
	}
}

// PathLength returns the number of steps of a complete path.
func (p Problem) PathLength() int { return domain.Size(p.NumFeeds) }

// TiePolicy selects how complete paths whose cost equals the bound are treated.
type TiePolicy int

const (
	// StrictImprovement prunes every node and candidate whose cost reaches the
	// bound. Tied complete paths are never seen, so a search can report no
	// solution even though a path matching the bound exists.
	StrictImprovement TiePolicy = iota

	// EnumerateTies is the exhaustive diagnostic mode. The initial bound is
	// lowered by one cost unit (so orders already known to reach it are not
	// rediscovered) and pruning only happens strictly above the bound. The
	// first complete path within the bound is recorded; later ones matching
	// the best cost at that time are reported to Options.OnTie. Much slower
	// than StrictImprovement.
	EnumerateTies
)

// String returns the policy name.
func (tp TiePolicy) String() string {
	switch tp {
	case StrictImprovement:
		return "strict"
	case EnumerateTies:
		return "enumerate-ties"
	default:
		return fmt.Sprintf("TiePolicy(%d)", int(tp))
	}
}

// tieBoundMargin is one cost unit: every access costs a whole number of units.
const tieBoundMargin cache.Cost = 1

// Stats counts search events.
type Stats struct {
	Seeds       int // partial paths seeded
	Pops        int // nodes taken off the frontier
	Pruned      int // popped nodes and candidates discarded by the bound
	Evaluated   int // candidate steps scored
	Pushed      int // partial paths pushed back onto the frontier
	Records     int // strictly improving complete paths
	Ties        int // complete paths matching the best cost (EnumerateTies only)
	MaxFrontier int // largest frontier size observed
}

// add merges o into s; MaxFrontier keeps the larger value.
func (s *Stats) add(o Stats) {
	s.Seeds += o.Seeds
	s.Pops += o.Pops
	s.Pruned += o.Pruned
	s.Evaluated += o.Evaluated
	s.Pushed += o.Pushed
	s.Records += o.Records
	s.Ties += o.Ties
	s.MaxFrontier = max(s.MaxFrontier, o.MaxFrontier)
}

// Result holds the outcome of a search.
type Result struct {
	// Found reports whether a path strictly cheaper than the bound was found.
	Found bool
	// Cost is the cost of Path (0 when !Found).
	Cost cache.Cost
	// Path is the best complete traversal found (nil when !Found).
	Path []domain.Pair
	// Stats summarizes the work done.
	Stats Stats
}
