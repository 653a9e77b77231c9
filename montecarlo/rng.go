// SPDX-License-Identifier: MIT
// Package: lvfrac/montecarlo
//
// rng.go: deterministic per-worker random streams.
//
// Policy:
//   - seed == 0 selects defaultSeed, so the zero Config is reproducible.
//   - worker w draws from rand.NewSource(deriveSeed(seed, w)); streams of
//     different workers are decorrelated by a SplitMix64 finalizer.
//
// Concurrency: *rand.Rand is not goroutine-safe; each worker owns one.

package montecarlo

import "math/rand"

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// workerRNG returns the stream of worker w for a run seed.
func workerRNG(seed int64, w int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(w))))
}
