// File: types.go
// Role: public contracts (Proposer, Adaptive, Factory) and documented defaults.

package proposal

import "math/rand"

// Defaults - single source of truth for proposal tuning behavior.
const (
	// DefaultStepWidth is the per-dimension Gaussian step width used when the
	// caller does not supply one.
	DefaultStepWidth = 0.1

	// DefaultTargetAcceptance is the acceptance rate warm-up tuning steers
	// toward. Random-walk Metropolis mixes best in the 20-40% window.
	DefaultTargetAcceptance = 0.3

	// minAdaptFactor and maxAdaptFactor bound a single AdaptScale adjustment
	// so one noisy window cannot collapse or explode the step size.
	minAdaptFactor = 0.1
	maxAdaptFactor = 10.0

	// minAcceptance and maxAcceptance keep the tangent rule away from its
	// singularities at 0 and 1.
	minAcceptance = 0.01
	maxAcceptance = 0.99
)

// Proposer produces a candidate parameter vector from the current one.
//
// Propose must:
//   - return a fresh slice of the same length as current,
//   - draw randomness only from rng (the owning chain's private stream),
//   - leave current untouched.
//
// LogRatio reports the Hastings correction log q(from|to) − log q(to|from);
// symmetric proposals return 0.
type Proposer interface {
	// Dim reports the dimensionality this generator was built for.
	Dim() int

	// Propose returns a candidate vector given the current state.
	Propose(rng *rand.Rand, current []float64) []float64

	// LogRatio reports the log proposal-density ratio for the MH correction.
	LogRatio(from, to []float64) float64
}

// Adaptive is a Proposer whose overall step size can be retuned between
// iterations. Chains use it during warm-up to steer the acceptance rate.
type Adaptive interface {
	Proposer

	// Scale reports the current global step-size multiplier.
	Scale() float64

	// SetScale replaces the global step-size multiplier.
	// Non-finite or non-positive values are ignored.
	SetScale(s float64)
}

// Factory builds one independent Proposer per chain for the given
// dimensionality. Each chain must own its own instance so adaptive state is
// never shared across goroutines.
type Factory func(dim int) (Proposer, error)
