package cache_test

import (
	"testing"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/stretchr/testify/require"
)

func TestNew_TierCapacities(t *testing.T) {
	m := cache.New(cache.EntrySizeForL1(3))
	require.Equal(t, 3, m.L1Entries())
	require.LessOrEqual(t, m.L1Entries(), m.L2Entries())
	require.LessOrEqual(t, m.L2Entries(), m.L3Entries())

	m = cache.New(64)
	require.Equal(t, 512, m.L1Entries())
	require.Equal(t, 8192, m.L2Entries())
	require.Equal(t, 524288, m.L3Entries())
}

func TestNew_PanicsOnBadEntrySize(t *testing.T) {
	require.Panics(t, func() { cache.New(0) })
	require.Panics(t, func() { cache.New(-8) })
	require.Panics(t, func() { cache.EntrySizeForL1(0) })
}

func TestCostOfAge_Tiers(t *testing.T) {
	// 4 L1 entries, 64 L2 entries, 4096 L3 entries.
	m := cache.New(cache.L1Capacity / 4)
	require.Equal(t, 4, m.L1Entries())

	cases := []struct {
		age  int
		want cache.Cost
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{m.L2Entries() - 1, 1},
		{m.L2Entries(), 5},
		{m.L3Entries() - 1, 5},
		{m.L3Entries(), 30},
		{10 * m.L3Entries(), 30},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, m.CostOfAge(tc.age), "age=%d", tc.age)
	}
}

func TestSimulateAccess_FirstTouchAndRepeatAreFree(t *testing.T) {
	m := cache.New(cache.EntrySizeForL1(1))
	entries := m.StartSimulation()

	require.Equal(t, cache.Cost(0), m.SimulateAccess(&entries, 7))
	require.Equal(t, cache.Cost(0), m.SimulateAccess(&entries, 7))
	require.Equal(t, cache.Entries{7}, entries)

	// Another first touch is free too, even with a one-entry L1.
	require.Equal(t, cache.Cost(0), m.SimulateAccess(&entries, 3))
	require.Equal(t, cache.Entries{7, 3}, entries)
}

func TestSimulateAccess_MovesEntryToTail(t *testing.T) {
	m := cache.New(cache.EntrySizeForL1(3))
	entries := m.StartSimulation()
	for _, e := range []cache.Entry{0, 1, 2, 3} {
		require.Zero(t, m.SimulateAccess(&entries, e))
	}
	require.Equal(t, cache.Entries{0, 1, 2, 3}, entries)

	// Entry 0 has age 3: one past L1 capacity.
	require.Equal(t, cache.Cost(1), m.SimulateAccess(&entries, 0))
	require.Equal(t, cache.Entries{1, 2, 3, 0}, entries)

	// Entry 2 has age 2: still in L1.
	require.Equal(t, cache.Cost(0), m.SimulateAccess(&entries, 2))
	require.Equal(t, cache.Entries{1, 3, 0, 2}, entries)
}

func TestEntries_CloneIsIndependent(t *testing.T) {
	m := cache.New(cache.EntrySizeForL1(3))
	entries := m.StartSimulation()
	m.SimulateAccess(&entries, 1)
	m.SimulateAccess(&entries, 2)

	cp := entries.Clone()
	m.SimulateAccess(&cp, 1)
	m.SimulateAccess(&cp, 5)

	require.Equal(t, cache.Entries{1, 2}, entries)
	require.Equal(t, cache.Entries{2, 1, 5}, cp)
	require.Nil(t, cache.Entries(nil).Clone())
}
