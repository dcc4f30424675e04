// File: rand.go
// Role: reproducible, independent per-chain PRNG streams.
// Determinism:
//   - NewStream(seed, i) is a pure function of its arguments; two calls with
//     the same pair yield byte-identical random sequences.
//   - Adjacent chain indices are scrambled through SplitMix64 so streams do
//     not overlap even when the master seed is small.

package core

import "math/rand"

// splitMixGamma is the Weyl-sequence increment from the SplitMix64 generator
// (Steele, Lea & Flood 2014). Mixing masterSeed + gamma·(index+1) through the
// finalizer decorrelates streams whose seeds differ by one.
const splitMixGamma = 0x9E3779B97F4A7C15

// splitmix64 applies the SplitMix64 finalizer to z.
func splitmix64(z uint64) uint64 {
	z += splitMixGamma
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}

// NewStream returns an independent pseudo-random stream for one chain.
// The stream is deterministic given (masterSeed, chainIndex) and must never
// be shared across chains: each chain owns exactly one stream so parallel
// stepping stays race-free and runs stay reproducible.
func NewStream(masterSeed uint64, chainIndex int) *rand.Rand {
	mixed := splitmix64(masterSeed + splitMixGamma*uint64(chainIndex+1))

	return rand.New(rand.NewSource(int64(mixed))) // #nosec G404 -- statistical sampling, not crypto
}
