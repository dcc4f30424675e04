// Package core provides the primitives shared by every sampling component:
// the ParameterSet record, the LogProb target contract, and reproducible
// per-chain pseudo-random streams.
//
// A ParameterSet is a fixed-length vector of real-valued parameters plus the
// scalar fitness (log-likelihood or log-posterior) evaluated at that point.
// Dimensionality is fixed for the lifetime of a sampling run; instances are
// never mutated in place — Clone produces a fully independent copy, which is
// what lets chains run in parallel and results be snapshotted safely.
//
// A LogProb is the externally supplied target density evaluator. The core
// treats it as an opaque, possibly expensive callback. It may return NaN or
// ±Inf for invalid regions of parameter space; samplers treat any non-finite
// value as log-density −∞ (unconditional rejection), never as an error.
//
// NewStream derives an independent *rand.Rand for each chain from a master
// seed and the chain index. Streams are deterministic for a given
// (seed, index) pair and are never shared across chains, so parallel runs
// are both race-free and reproducible.
//
// Errors:
//
//	ErrEmptyValues       - a parameter vector of length zero was supplied.
//	ErrDimensionMismatch - two vectors of different lengths were combined.
package core
