// Package cache provides a recency-based cost model of a three-tier memory
// hierarchy, used to score the order in which feed pairs are accessed.
//
// What:
//
//   - Model derives L1/L2/L3 capacities (in entries) from an entry size and
//     fixed hardware-like capacity constants.
//   - SimulateAccess charges an access by the rank-distance ("age") of the
//     entry from the tail of a caller-owned recency list, then moves it to
//     the tail.
//
// Why:
//
//   - Compare iteration orders (row-major, blocked, space-filling curves,
//     searched paths) by a single locality figure of merit.
//
// The recency list never evicts anything: it is a cost model, not a literal
// cache. First touches are free since they happen in every order.
//
// Complexity:
//
//   - SimulateAccess: O(k) where k is the number of distinct entries seen.
//   - Memory: O(k) per recency list.
//
// Errors:
//
//   - ErrEntrySize: New was given a non-positive entry size (panics).
package cache
