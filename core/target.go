// File: target.go
// Role: the externally supplied target-density contract.

package core

import "math"

// LogProb evaluates the target log-density (log-likelihood or log-posterior)
// at a parameter vector. Implementations may be expensive and may return NaN
// or ±Inf for invalid regions; samplers must invoke it exactly once per
// proposal and must treat any non-finite result as −∞ (reject), never as a
// fatal error.
//
// A LogProb instance holding mutable internal state must not be shared
// across chains unless the caller guarantees thread safety.
type LogProb func(values []float64) float64

// UsableFitness maps a raw LogProb result onto the sampler's internal
// convention: non-finite values (NaN, +Inf, -Inf) become −∞, which makes the
// Metropolis ratio reject the candidate unconditionally.
func UsableFitness(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.Inf(-1)
	}

	return f
}
