package domain_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/pairpath/domain"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.Equal(t, 0, domain.Size(0))
	require.Equal(t, 1, domain.Size(1))
	require.Equal(t, 10, domain.Size(4))
	require.Equal(t, 36, domain.Size(8))
}

func TestIndex_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		want := 0
		for x := 0; x < n; x++ {
			for y := x; y < n; y++ {
				p := domain.Pair{X: x, Y: y}
				require.Equal(t, want, domain.Index(n, p), "n=%d p=%v", n, p)
				require.Equal(t, p, domain.FromIndex(n, want))
				want++
			}
		}
		require.Equal(t, domain.Size(n), want)
	}
}

func TestContainsAndMirror(t *testing.T) {
	require.True(t, domain.Contains(4, domain.Pair{X: 0, Y: 3}))
	require.False(t, domain.Contains(4, domain.Pair{X: 2, Y: 1}))
	require.False(t, domain.Contains(4, domain.Pair{X: 0, Y: 4}))
	require.False(t, domain.Contains(4, domain.Pair{X: -1, Y: 0}))

	require.Equal(t, domain.Pair{X: 0, Y: 3}, domain.Mirror(4, domain.Pair{X: 0, Y: 3}))
	require.Equal(t, domain.Pair{X: 3, Y: 3}, domain.Mirror(4, domain.Pair{X: 0, Y: 0}))
	require.Equal(t, domain.Pair{X: 1, Y: 2}, domain.Mirror(4, domain.Pair{X: 1, Y: 2}))
}

func TestSeeds_SymmetryReduced(t *testing.T) {
	seeds := domain.Seeds(4)
	require.Equal(t, []domain.Pair{
		{0, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}, {0, 3},
	}, seeds)

	for _, n := range []int{2, 3, 5, 8} {
		seeds = domain.Seeds(n)
		covered := make(map[domain.Pair]bool)
		for _, s := range seeds {
			require.True(t, domain.Contains(n, s))
			require.LessOrEqual(t, s.X+s.Y, n-1, "seed %v beyond the symmetry axis", s)
			covered[s] = true
			covered[domain.Mirror(n, s)] = true
		}
		require.Len(t, covered, domain.Size(n), "n=%d", n)
	}
}

func TestNeighborTable_Errors(t *testing.T) {
	_, err := domain.NewNeighborTable(0, 1)
	require.ErrorIs(t, err, domain.ErrNumFeeds)
	_, err = domain.NewNeighborTable(4, 0)
	require.ErrorIs(t, err, domain.ErrRadius)
}

func TestNeighborTable_Radius1Origin(t *testing.T) {
	nt, err := domain.NewNeighborTable(4, 1)
	require.NoError(t, err)

	got := slices.Collect(nt.Neighbors(domain.Pair{X: 0, Y: 0}))
	require.Equal(t, []domain.Pair{{0, 0}, {0, 1}, {1, 1}}, got)
	require.NotContains(t, got, domain.Pair{X: 2, Y: 2})
	require.Equal(t, len(got), nt.Count(domain.Pair{X: 0, Y: 0}))
}

func TestNeighborTable_MatchesBruteForce(t *testing.T) {
	for _, n := range []int{2, 4, 6} {
		for r := 1; r <= n; r++ {
			nt, err := domain.NewNeighborTable(n, r)
			require.NoError(t, err)
			require.Equal(t, n, nt.NumFeeds())
			require.Equal(t, r, nt.MaxRadius())

			for x := 0; x < n; x++ {
				for y := x; y < n; y++ {
					src := domain.Pair{X: x, Y: y}
					var want []domain.Pair
					for nx := 0; nx < n; nx++ {
						for ny := nx; ny < n; ny++ {
							dst := domain.Pair{X: nx, Y: ny}
							if domain.Chebyshev(src, dst) <= r {
								want = append(want, dst)
							}
						}
					}
					got := slices.Collect(nt.Neighbors(src))
					require.Equal(t, want, got, "n=%d r=%d src=%v", n, r, src)
					require.Equal(t, len(want), nt.Count(src))
				}
			}
		}
	}
}

func TestNeighborTable_EarlyStop(t *testing.T) {
	nt, err := domain.NewNeighborTable(5, 2)
	require.NoError(t, err)

	var seen int
	for range nt.Neighbors(domain.Pair{X: 2, Y: 2}) {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func rowMajor(n int) []domain.Pair {
	var out []domain.Pair
	for x := 0; x < n; x++ {
		for y := x; y < n; y++ {
			out = append(out, domain.Pair{X: x, Y: y})
		}
	}
	return out
}

func TestValidatePath(t *testing.T) {
	path := rowMajor(4)
	require.NoError(t, domain.ValidatePath(path, 4, 0))
	require.NoError(t, domain.ValidatePath(path, 4, 3))

	// (0,3) -> (1,1) jumps two rows back on the y axis.
	require.ErrorIs(t, domain.ValidatePath(path, 4, 1), domain.ErrStepTooFar)

	require.ErrorIs(t, domain.ValidatePath(path[:9], 4, 0), domain.ErrPathLength)

	dup := slices.Clone(path)
	dup[9] = dup[0]
	require.ErrorIs(t, domain.ValidatePath(dup, 4, 0), domain.ErrDuplicateStep)

	bad := slices.Clone(path)
	bad[9] = domain.Pair{X: 3, Y: 2}
	require.ErrorIs(t, domain.ValidatePath(bad, 4, 0), domain.ErrOutOfDomain)
}

func TestMissing(t *testing.T) {
	path := rowMajor(4)
	require.Empty(t, domain.Missing(path, 4))

	partial := []domain.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {7, 7}}
	require.Equal(t, []domain.Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, domain.Missing(partial, 4))
	require.Nil(t, domain.Missing(nil, 0))
}
