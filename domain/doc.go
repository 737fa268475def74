// Package domain models the triangular feed-pair domain that access orders
// traverse, together with its step-radius adjacency.
//
// What:
//
//   - Pair is an ordered feed pair (X ≤ Y); the domain of n feeds is every
//     such pair with Y < n, n·(n+1)/2 points in total.
//   - NeighborTable precomputes, for every point, the points reachable in one
//     step of Chebyshev radius ≤ r that stay inside the domain.
//   - Seeds enumerates start points up to the point symmetry
//     (x, y) ↦ (n-1-y, n-1-x).
//   - ValidatePath checks that a sequence is a Hamiltonian traversal of the
//     domain under a radius bound.
//
// Complexity:
//
//   - NewNeighborTable: O(n²·r) time, O(n²·r) memory.
//   - Neighbors: O(1) setup, O(k) enumeration for k neighbors.
//   - ValidatePath: O(L) for a path of length L.
//
// Errors:
//
//   - ErrNumFeeds, ErrRadius: invalid table parameters.
//   - ErrPathLength, ErrOutOfDomain, ErrDuplicateStep, ErrStepTooFar: path
//     validation failures.
package domain
