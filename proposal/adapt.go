// File: adapt.go
// Role: warm-up step-size retuning (tangent rule).

package proposal

import "math"

// AdaptScale retunes a proposal scale toward a target acceptance rate using
// the tangent rule
//
//	scale' = scale · tan(π/2·observed) / tan(π/2·target).
//
// Acceptance rates are clamped away from 0 and 1 (tangent singularities) and
// a single adjustment is bounded to [0.1×, 10×] so one noisy warm-up window
// cannot collapse or explode the step size. A non-positive target falls back
// to DefaultTargetAcceptance.
func AdaptScale(scale, observed, target float64) float64 {
	if target <= 0 || target >= 1 || math.IsNaN(target) {
		target = DefaultTargetAcceptance
	}
	obs := clamp(observed, minAcceptance, maxAcceptance)
	tgt := clamp(target, minAcceptance, maxAcceptance)

	factor := math.Tan(math.Pi/2*obs) / math.Tan(math.Pi/2*tgt)
	factor = clamp(factor, minAdaptFactor, maxAdaptFactor)

	return scale * factor
}

// clamp bounds x to [lo, hi]. NaN maps to lo.
func clamp(x, lo, hi float64) float64 {
	if !(x > lo) {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
