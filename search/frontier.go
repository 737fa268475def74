// Package search — priority frontier.
//
// Exploration order has to reconcile two goals:
//   - finish paths quickly, so that memory is released and the bound
//     tightens early;
//   - favour currently cheap paths and cover the path space broadly rather
//     than exhausting one region as plain depth-first search would.
//
// Priority = round(weight·len − cost). Nodes sharing a priority go into one
// bucket; Pop draws uniformly inside the highest bucket.
package search

import (
	"math"
	"slices"
)

// Frontier is a bucketed max-priority queue of partial paths.
// Not safe for concurrent use.
type Frontier struct {
	weight  float64
	buckets map[int][]*PartialPath
	keys    []int // ascending; exactly the keys of non-empty buckets
	size    int
}

// NewFrontier creates an empty frontier whose priority weighs path length
// by weight (DefaultPriorityWeight if weight ≤ 0).
func NewFrontier(weight float64) *Frontier {
	if weight <= 0 || math.IsNaN(weight) {
		weight = DefaultPriorityWeight
	}

	return &Frontier{
		weight:  weight,
		buckets: make(map[int][]*PartialPath),
	}
}

// Priority returns the bucket key of pp; higher is explored first.
func (f *Frontier) Priority(pp *PartialPath) int {
	return int(math.Round(f.weight*float64(pp.Len()) - pp.CostSoFar()))
}

// Push records a partial path.
//
// Complexity: O(1) amortized, O(b) when a new bucket among b is created.
func (f *Frontier) Push(pp *PartialPath) {
	key := f.Priority(pp)
	bucket, ok := f.buckets[key]
	if !ok {
		i, _ := slices.BinarySearch(f.keys, key)
		f.keys = slices.Insert(f.keys, i, key)
	}
	f.buckets[key] = append(bucket, pp)
	f.size++
}

// Pop removes and returns a uniformly chosen node of the highest-priority
// bucket. It returns false when the frontier is empty.
//
// Complexity: O(s) for a bucket of s nodes.
func (f *Frontier) Pop(rng RandSource) (*PartialPath, bool) {
	if len(f.keys) == 0 {
		return nil, false
	}

	var (
		top    = len(f.keys) - 1
		key    = f.keys[top]
		bucket = f.buckets[key]
		i      = rng.Intn(len(bucket))
		pp     = bucket[i]
	)
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(f.buckets, key)
		f.keys = f.keys[:top]
	} else {
		f.buckets[key] = bucket
	}
	f.size--

	return pp, true
}

// Len returns the number of nodes in the frontier.
func (f *Frontier) Len() int { return f.size }

// Buckets returns the number of distinct priorities in the frontier.
func (f *Frontier) Buckets() int { return len(f.keys) }
