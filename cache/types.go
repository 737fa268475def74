package cache

import "errors"

// ErrEntrySize indicates a non-positive entry size was passed to New.
var ErrEntrySize = errors.New("cache: entry size must be positive")

// Cost is a simulated access cost expressed in L1-miss units.
type Cost = float64

// Entry identifies one cached item (a feed index).
type Entry = int

// Entries is a recency list: entries ordered by access date, most recently
// accessed entry last.
type Entries []Entry

// Clone returns an independent copy of the recency list.
func (e Entries) Clone() Entries {
	if e == nil {
		return nil
	}
	out := make(Entries, len(e))
	copy(out, e)

	return out
}

// Capacities and latency plateaux, roughly those of a recent desktop CPU.
// Only orders of magnitude matter here.
const (
	// L1Capacity is the first-tier capacity in bytes.
	L1Capacity = 32 * 1024
	// L2Capacity is the second-tier capacity in bytes.
	L2Capacity = 512 * 1024
	// L3Capacity is the third-tier capacity in bytes.
	L3Capacity = 32 * 1024 * 1024

	// L1MissCost is the baseline cost unit (an L1 miss served by L2).
	L1MissCost Cost = 2.0
	// L2MissCost is the latency of an access served by L3.
	L2MissCost Cost = 10.0
	// L3MissCost is the latency of an access served by memory.
	L3MissCost Cost = 60.0
)

// MinUsefulL1Entries is the smallest L1 capacity (in entries) for which
// access ordering makes a difference: below that, every access to a pair
// other than the current one misses.
const MinUsefulL1Entries = 3
