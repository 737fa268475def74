package order_test

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
	"github.com/katalvlaran/pairpath/order"
	"github.com/stretchr/testify/require"
)

func TestGenerators_CoverDomainOnce(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 9} {
		gens := map[string][]domain.Pair{
			"rowmajor": slices.Collect(order.RowMajor(n)),
			"blocked2": slices.Collect(order.Blocked(n, 2)),
			"blocked3": slices.Collect(order.Blocked(n, 3)),
			"blocked0": slices.Collect(order.Blocked(n, 0)),
			"morton":   slices.Collect(order.Morton(n)),
		}
		for name, path := range gens {
			require.NoError(t, domain.ValidatePath(path, n, 0), "%s n=%d", name, n)
		}
	}
}

func TestRowMajor_Order(t *testing.T) {
	require.Equal(t,
		[]domain.Pair{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		slices.Collect(order.RowMajor(3)))
}

func TestBlocked_Order(t *testing.T) {
	require.Equal(t,
		[]domain.Pair{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, // tile (0,0)
			{X: 0, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 3}, // tile (0,2)
			{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, // tile (2,2)
		},
		slices.Collect(order.Blocked(4, 2)))
	require.Equal(t, slices.Collect(order.RowMajor(5)), slices.Collect(order.Blocked(5, 1)))
}

func TestMorton_Order(t *testing.T) {
	require.Equal(t,
		[]domain.Pair{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}},
		slices.Collect(order.Morton(4)))
}

func TestMortonDecode2D(t *testing.T) {
	cases := []struct{ idx, x, y int }{
		{0, 0, 0}, {1, 1, 0}, {2, 0, 1}, {3, 1, 1},
		{4, 2, 0}, {10, 0, 3}, {15, 3, 3}, {63, 7, 7},
	}
	for _, tc := range cases {
		x, y := order.MortonDecode2D(tc.idx)
		require.Equal(t, tc.x, x, "idx=%d", tc.idx)
		require.Equal(t, tc.y, y, "idx=%d", tc.idx)
	}
}

func TestGenerators_EarlyStop(t *testing.T) {
	for _, seq := range []func(func(domain.Pair) bool){
		order.RowMajor(6), order.Blocked(6, 2), order.Morton(6),
	} {
		var n int
		for range seq {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	}
}

func TestScorePairs_RowMajorN4(t *testing.T) {
	m := cache.New(cache.EntrySizeForL1(3))
	s := order.ScorePairs(m, order.RowMajor(4), nil)
	require.Equal(t, 10, s.Pairs)
	// (1,1) and (1,2) each revisit a feed that aged out of L1.
	require.Equal(t, cache.Cost(2), s.Total)
	require.InDelta(t, 0.2, s.PerPair(), 1e-12)

	require.Zero(t, order.Score{}.PerPair())
}

func TestScorePairs_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: order.LevelTrace}))
	m := cache.New(cache.EntrySizeForL1(3))
	order.ScorePairs(m, order.RowMajor(2), logger)

	out := buf.String()
	require.Equal(t, 3, strings.Count(out, `msg="accessed feed pair"`))
	require.Equal(t, 6, strings.Count(out, `msg="accessed feed"`))
}
