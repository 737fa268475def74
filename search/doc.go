// Package search finds feed-pair access orders that beat a cost bound under
// the cache cost model, by branch-and-bound over Hamiltonian traversals of
// the triangular pair domain.
//
// What:
//
//   - PartialPath — one search node: path prefix, recency state, visited
//     index and accumulated cost. Nodes are never mutated after creation;
//     extending a node clones its state.
//   - Frontier — integer-keyed buckets of nodes; Pop takes a uniformly
//     random node from the highest-priority bucket.
//   - Search / SearchBestPath — the driver: seed one node per symmetry class
//     of start points, pop, expand through the neighbor table, prune against
//     the bound, record strictly improving complete paths.
//   - SearchParallel — seeds partitioned across workers, each with its own
//     frontier, sharing a monotonically decreasing bound.
//
// Why:
//
//   - Fixed schemes (row-major, tiles, Morton) are designed for square
//     lattices; the triangular domain with a small cache can do better.
//
// Guarantees:
//
//   - Cost is non-decreasing along a path, so pruning a node whose cost
//     already reaches the bound is sound. Without a budget, the returned
//     path is optimal among all traversals strictly cheaper than the bound.
//   - The random tiebreak changes exploration order only; the optimal cost
//     is the same for every RandSource.
//
// Complexity:
//
//   - Exponential in the domain size n·(n+1)/2. Intended for small n (≤ 8).
//   - Per expansion: O(r²) candidates, each O(k) to score for k feeds.
//
// Errors:
//
//   - ErrNumFeeds, ErrEntrySize, ErrRadius, ErrBound, ErrCacheTooSmall —
//     contract violations; Search panics with them, Problem.Validate
//     returns them.
//   - ErrTimeLimit, ErrPopLimit, context errors — budget exhausted; the
//     incumbent, if any, is returned alongside.
package search
