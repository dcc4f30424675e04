// File: samplesize.go
// Role: Raftery-Lewis-style minimum sample size heuristic.

package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// sampleSizeRounding: the closed-form estimate is reported to the nearest
// multiple of this, matching the reference convention.
const sampleSizeRounding = 100

// MinimumSampleSize estimates how many (independent) draws are needed to
// pin down the target quantile q within tolerance r at probability s:
//
//	N = q·(1−q)·Φ⁻¹((s+1)/2)² / r²
//
// rounded to the nearest 100. Pure and deterministic — recomputing with the
// same inputs always yields the same integer.
//
// Errors: ErrBadQuantile (q ∉ (0,1)), ErrBadTolerance (r ≤ 0 or not finite),
// ErrBadProbability (s ∉ (0,1)).
func MinimumSampleSize(quantile, tolerance, probability float64) (int, error) {
	if !(quantile > 0 && quantile < 1) {
		return 0, ErrBadQuantile
	}
	if !(tolerance > 0) || math.IsInf(tolerance, 0) {
		return 0, ErrBadTolerance
	}
	if !(probability > 0 && probability < 1) {
		return 0, ErrBadProbability
	}

	z := distuv.UnitNormal.Quantile((probability + 1) / 2)
	n := quantile * (1 - quantile) * z * z / (tolerance * tolerance)

	return int(math.Round(n/sampleSizeRounding)) * sampleSizeRounding, nil
}
