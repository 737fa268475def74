// Package search — RNG utilities for the frontier tiebreak.
//
// Goals:
//   - Determinism: same seed ⇒ same exploration order.
//   - Injection: the frontier draws from a RandSource, never from a global
//     generator, so tests can pin the sequence.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. SearchParallel derives one
//     independent stream per worker with deriveRNG.
package search

import "math/rand"

// RandSource supplies the uniform draws used to break priority ties.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform integer in [0, n). n > 0.
	Intn(n int) int
}

// DefaultSeed is the seed used when Options.Seed is 0.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so that neighbouring stream ids give
// uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a
// stream identifier. base.Int63() is consumed once per call so that reusing
// a stream id by mistake still yields distinct children. base==nil uses
// DefaultSeed as the parent.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
