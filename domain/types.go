package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations.
var (
	// ErrNumFeeds indicates a feed count below 1.
	ErrNumFeeds = errors.New("domain: number of feeds must be positive")
	// ErrRadius indicates a step radius below 1.
	ErrRadius = errors.New("domain: step radius must be at least 1")
	// ErrPathLength indicates a path that does not have one step per domain point.
	ErrPathLength = errors.New("domain: path length does not match domain size")
	// ErrOutOfDomain indicates a step outside {(x, y) : 0 ≤ x ≤ y < n}.
	ErrOutOfDomain = errors.New("domain: step outside of the domain")
	// ErrDuplicateStep indicates a point visited twice.
	ErrDuplicateStep = errors.New("domain: point visited more than once")
	// ErrStepTooFar indicates a transition longer than the step radius.
	ErrStepTooFar = errors.New("domain: step exceeds radius")
)

// Pair is a pair of feed indices with X ≤ Y.
type Pair struct {
	X, Y int
}

// String formats the pair as "(x, y)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Feeds returns both feed indices in access order.
func (p Pair) Feeds() [2]int {
	return [2]int{p.X, p.Y}
}

// Size returns the number of points in the domain of numFeeds feeds.
func Size(numFeeds int) int {
	if numFeeds <= 0 {
		return 0
	}

	return numFeeds * (numFeeds + 1) / 2
}

// Contains reports whether p lies in the domain of numFeeds feeds.
func Contains(numFeeds int, p Pair) bool {
	return p.X >= 0 && p.X <= p.Y && p.Y < numFeeds
}

// Index maps an in-domain point to its rank in row-major order:
// (0,0), (0,1), …, (0,n-1), (1,1), … gets 0, 1, ….
// The result is unspecified for points outside the domain.
//
// Complexity: O(1).
func Index(numFeeds int, p Pair) int {
	return p.X*numFeeds - p.X*(p.X-1)/2 + (p.Y - p.X)
}

// FromIndex is the inverse of Index.
//
// Complexity: O(n).
func FromIndex(numFeeds int, idx int) Pair {
	var (
		x   int
		row = numFeeds
	)
	for idx >= row && row > 0 {
		idx -= row
		x++
		row--
	}

	return Pair{X: x, Y: x + idx}
}

// Mirror returns the point-symmetric counterpart (n-1-y, n-1-x) of p.
// Traversals starting from p and from Mirror(p) are equivalent.
func Mirror(numFeeds int, p Pair) Pair {
	return Pair{X: numFeeds - 1 - p.Y, Y: numFeeds - 1 - p.X}
}

// Chebyshev returns max(|a.X-b.X|, |a.Y-b.Y|).
func Chebyshev(a, b Pair) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}

	return dy
}
