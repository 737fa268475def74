// Package order provides fixed iteration orders over the feed-pair domain
// and scores any order against the cache cost model.
//
// Generators (all iter.Seq[domain.Pair], each domain point exactly once):
//
//   - RowMajor — for x in 0..n, for y in x..n.
//   - Blocked  — RowMajor over b×b tiles, RowMajor inside each tile.
//   - Morton   — Z-order curve over the n×n square, upper triangle kept.
//
// ScorePairs replays an order through a cache.Model and reports the total and
// per-pair cost, the figure a searched path has to beat.
package order
