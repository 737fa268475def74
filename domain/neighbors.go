// Package domain — precomputed step-radius adjacency.
//
// For a point (x, y) and radius r the legal next points are
//
//	x' ∈ [max(0, x-r), min(n-1, x+r)]
//	y' ∈ [max(x', y-r), min(n-1, y+r)]   for each x'
//
// where the lower y' bound keeps the successor inside the triangle.
//
// Storage is a per-point record (first x', number of x' values, offset into a
// shared slice of y' ranges) so that the hot loop reads a handful of integers
// instead of a materialized pair list, and no bounds or shape checks remain
// in the search itself.
package domain

import (
	"fmt"
	"iter"
)

// yRange is an inclusive range of successor y coordinates.
type yRange struct {
	lo, hi int
}

// neighborhood is the compact neighbor record of one domain point.
type neighborhood struct {
	firstX int // smallest successor x
	offset int // index of the first y range in NeighborTable.ranges
	count  int // number of successor x values (one y range each)
}

// NeighborTable lists the successors of every domain point.
// It is immutable once built and safe for concurrent readers.
type NeighborTable struct {
	numFeeds  int
	maxRadius int
	points    []neighborhood // indexed by Index(numFeeds, p)
	ranges    []yRange
}

// NewNeighborTable precomputes successors for every point of the domain of
// numFeeds feeds under a step radius of maxRadius.
//
// Errors: ErrNumFeeds if numFeeds < 1, ErrRadius if maxRadius < 1.
//
// Complexity: O(n²·r) time and memory.
func NewNeighborTable(numFeeds, maxRadius int) (*NeighborTable, error) {
	if numFeeds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNumFeeds, numFeeds)
	}
	if maxRadius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRadius, maxRadius)
	}

	var (
		nt = &NeighborTable{
			numFeeds:  numFeeds,
			maxRadius: maxRadius,
			points:    make([]neighborhood, Size(numFeeds)),
		}
		x, y, nx int
	)
	for x = 0; x < numFeeds; x++ {
		for y = x; y < numFeeds; y++ {
			xLo := max(0, x-maxRadius)
			xHi := min(numFeeds-1, x+maxRadius)
			rec := neighborhood{firstX: xLo, offset: len(nt.ranges)}
			for nx = xLo; nx <= xHi; nx++ {
				nt.ranges = append(nt.ranges, yRange{
					lo: max(nx, y-maxRadius),
					hi: min(numFeeds-1, y+maxRadius),
				})
				rec.count++
			}
			nt.points[Index(numFeeds, Pair{X: x, Y: y})] = rec
		}
	}

	return nt, nil
}

// NumFeeds returns the feed count the table was built for.
func (nt *NeighborTable) NumFeeds() int { return nt.numFeeds }

// MaxRadius returns the step radius the table was built for.
func (nt *NeighborTable) MaxRadius() int { return nt.maxRadius }

// Neighbors lazily enumerates the successors of p, x' ascending then y'
// ascending. p itself is part of the enumeration; callers tracking visited
// points skip it naturally. p must lie in the domain.
func (nt *NeighborTable) Neighbors(p Pair) iter.Seq[Pair] {
	rec := nt.points[Index(nt.numFeeds, p)]
	ranges := nt.ranges[rec.offset : rec.offset+rec.count]

	return func(yield func(Pair) bool) {
		var ny int
		for i, r := range ranges {
			nx := rec.firstX + i
			for ny = r.lo; ny <= r.hi; ny++ {
				if !yield(Pair{X: nx, Y: ny}) {
					return
				}
			}
		}
	}
}

// Count returns the number of successors of p (p itself included).
func (nt *NeighborTable) Count(p Pair) int {
	var (
		rec   = nt.points[Index(nt.numFeeds, p)]
		total int
	)
	for _, r := range nt.ranges[rec.offset : rec.offset+rec.count] {
		if r.hi >= r.lo {
			total += r.hi - r.lo + 1
		}
	}

	return total
}
