package domain

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ValidatePath checks that path visits every point of the domain of
// numFeeds feeds exactly once and that consecutive steps stay within
// maxRadius on both axes. maxRadius ≤ 0 disables the radius check, which is
// how fixed iteration orders (row-major, Morton, …) are validated.
//
// Errors: ErrPathLength, ErrOutOfDomain, ErrDuplicateStep, ErrStepTooFar,
// each wrapped with the offending step.
//
// Complexity: O(L) time, O(L) space (compressed bitmap of visited indices).
func ValidatePath(path []Pair, numFeeds, maxRadius int) error {
	if len(path) != Size(numFeeds) {
		return fmt.Errorf("%w: got %d steps, want %d", ErrPathLength, len(path), Size(numFeeds))
	}

	var (
		seen = roaring.New()
		i    int
		p    Pair
	)
	for i, p = range path {
		if !Contains(numFeeds, p) {
			return fmt.Errorf("%w: step %d is %v", ErrOutOfDomain, i, p)
		}
		if !seen.CheckedAdd(uint32(Index(numFeeds, p))) {
			return fmt.Errorf("%w: step %d is %v", ErrDuplicateStep, i, p)
		}
		if maxRadius > 0 && i > 0 && Chebyshev(path[i-1], p) > maxRadius {
			return fmt.Errorf("%w: %v -> %v at step %d", ErrStepTooFar, path[i-1], p, i)
		}
	}

	return nil
}

// Missing returns the domain points that path does not visit, in row-major
// order. Points outside the domain are ignored.
//
// Complexity: O(L + n²).
func Missing(path []Pair, numFeeds int) []Pair {
	size := Size(numFeeds)
	if size == 0 {
		return nil
	}

	seen := roaring.New()
	for _, p := range path {
		if Contains(numFeeds, p) {
			seen.Add(uint32(Index(numFeeds, p)))
		}
	}
	seen.Flip(0, uint64(size))

	out := make([]Pair, 0, seen.GetCardinality())
	it := seen.Iterator()
	for it.HasNext() {
		out = append(out, FromIndex(numFeeds, int(it.Next())))
	}

	return out
}
