// Package cache — tiered recency cost model.
//
// Design:
//   - Model is immutable after New and safe for concurrent use; all mutable
//     state lives in the Entries owned by the caller.
//   - Costs are relative to L1MissCost, so an L1 hit is free and an L1 miss
//     costs exactly one unit.
package cache

import "fmt"

// Model maps the age of an access to a tiered cost.
type Model struct {
	l1Entries int
	l2Entries int
	l3Entries int
}

// New sets up a cache model for entries of entrySize bytes.
// It panics with ErrEntrySize if entrySize ≤ 0.
//
// Complexity: O(1).
func New(entrySize int) *Model {
	if entrySize <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrEntrySize, entrySize))
	}

	return &Model{
		l1Entries: L1Capacity / entrySize,
		l2Entries: L2Capacity / entrySize,
		l3Entries: L3Capacity / entrySize,
	}
}

// EntrySizeForL1 returns the entry size, in bytes, for which the first tier
// holds exactly l1Entries entries. l1Entries must be positive.
func EntrySizeForL1(l1Entries int) int {
	if l1Entries <= 0 {
		panic(fmt.Errorf("%w: l1 entries %d", ErrEntrySize, l1Entries))
	}

	return L1Capacity / l1Entries
}

// L1Entries is the first-tier capacity in entries.
func (m *Model) L1Entries() int { return m.l1Entries }

// L2Entries is the second-tier capacity in entries.
func (m *Model) L2Entries() int { return m.l2Entries }

// L3Entries is the third-tier capacity in entries.
func (m *Model) L3Entries() int { return m.l3Entries }

// CostOfAge tells how expensive it is to access an entry after age other
// entries have been accessed since its previous access.
func (m *Model) CostOfAge(age int) Cost {
	switch {
	case age < m.l1Entries:
		return 0
	case age < m.l2Entries:
		return 1
	case age < m.l3Entries:
		return L2MissCost / L1MissCost
	default:
		return L3MissCost / L1MissCost
	}
}

// StartSimulation returns an empty recency list.
func (m *Model) StartSimulation() Entries {
	return Entries{}
}

// SimulateAccess charges an access to entry against the recency list and
// records it as the most recent one.
//
// The list is scanned from its tail; an entry found at age a costs
// CostOfAge(a) and is moved to the tail. An entry never seen before is
// appended at no cost.
//
// Complexity: O(len(*entries)).
func (m *Model) SimulateAccess(entries *Entries, entry Entry) Cost {
	var (
		list = *entries
		last = len(list) - 1
		pos  = -1
		i    int
	)
	for i = last; i >= 0; i-- {
		if list[i] == entry {
			pos = i
			break
		}
	}

	if pos < 0 {
		*entries = append(list, entry)
		return 0
	}

	cost := m.CostOfAge(last - pos)
	copy(list[pos:], list[pos+1:])
	list[last] = entry

	return cost
}
