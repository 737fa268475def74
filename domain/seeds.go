package domain

// Seeds enumerates one start point per symmetry class of the domain.
//
// Points are visited with y ascending, then x ascending over [0, y]; a point
// is skipped when its mirror image was already emitted. Self-symmetric
// points (x + y = n-1) are emitted once.
//
// Complexity: O(n²) time and memory.
func Seeds(numFeeds int) []Pair {
	var (
		seeded = make(map[Pair]struct{}, Size(numFeeds))
		out    = make([]Pair, 0, (Size(numFeeds)+numFeeds)/2)
		x, y   int
	)
	for y = 0; y < numFeeds; y++ {
		for x = 0; x <= y; x++ {
			p := Pair{X: x, Y: y}
			if _, dup := seeded[Mirror(numFeeds, p)]; dup {
				continue
			}
			seeded[p] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}
