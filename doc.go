// Package pairpath searches for cache-friendly orders in which to visit
// every unordered pair of feeds.
//
// What is pairpath?
//
//	A correlator combines every pair (x, y), x ≤ y, of n large feeds. The
//	order of those n·(n+1)/2 pair visits decides how often a feed has to be
//	fetched again from a slower cache tier. pairpath brings together:
//		• cache/         — tiered recency cost model (L1 / L2 / L3 / memory)
//		• domain/        — pairs, triangular indexing, seeds, neighbor table, path checks
//		• order/         — row-major, blocked and Morton orders + standalone scoring
//		• search/        — branch-and-bound over complete orders, sequential or parallel
//		• observability/ — Prometheus collector for search metrics
//
// Quick example (4 feeds, L1 holding 3 feeds, one row or column per step):
//
//	(0,0)─(0,1)─(0,2)─(0,3)      row-major: cost 2
//	      (1,1)─(1,2)─(1,3)      search:    cost 1
//	            (2,2)─(2,3)
//	                  (3,3)
//
// examples/pairbench sweeps feed counts and cache sizes and prints the
// comparison:
//
//	go run ./examples/pairbench -feeds 4,8 -radius 1
package pairpath
