// File: randomwalk.go
// Role: independent per-dimension Gaussian random-walk proposal.

package proposal

import (
	"math"
	"math/rand"
)

// RandomWalk proposes θ' = θ + scale·width_i·z_i with z_i ~ N(0,1) drawn
// per dimension from the chain's stream. Symmetric, so LogRatio is 0.
//
// The per-dimension widths are fixed at construction; Scale/SetScale expose
// the shared multiplier that warm-up adaptation retunes.
type RandomWalk struct {
	widths []float64
	scale  float64
}

// NewRandomWalk builds a random-walk generator with one Gaussian width per
// dimension. Every width must be finite and positive.
func NewRandomWalk(widths []float64) (*RandomWalk, error) {
	if len(widths) == 0 {
		return nil, ErrEmptyDim
	}
	w := make([]float64, len(widths))
	for i, s := range widths {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, ErrBadScale
		}
		w[i] = s
	}

	return &RandomWalk{widths: w, scale: 1}, nil
}

// RandomWalkFactory returns a Factory producing a fresh RandomWalk per chain
// with the same width in every dimension. A non-positive width falls back to
// DefaultStepWidth.
func RandomWalkFactory(width float64) Factory {
	return func(dim int) (Proposer, error) {
		if dim < 1 {
			return nil, ErrEmptyDim
		}
		if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
			width = DefaultStepWidth
		}
		widths := make([]float64, dim)
		for i := range widths {
			widths[i] = width
		}

		return NewRandomWalk(widths)
	}
}

// Dim reports the generator's dimensionality.
func (rw *RandomWalk) Dim() int { return len(rw.widths) }

// Propose returns a candidate vector; current is left untouched.
// Panics only on a programmer error (wrong current length); validated
// callers are the chain package.
func (rw *RandomWalk) Propose(rng *rand.Rand, current []float64) []float64 {
	if len(current) != len(rw.widths) {
		panic(panicDimMismatch)
	}
	out := make([]float64, len(current))
	for i := range current {
		out[i] = current[i] + rng.NormFloat64()*rw.widths[i]*rw.scale
	}

	return out
}

// LogRatio is 0: Gaussian random walk is symmetric.
func (rw *RandomWalk) LogRatio(_, _ []float64) float64 { return 0 }

// Scale reports the shared step-size multiplier.
func (rw *RandomWalk) Scale() float64 { return rw.scale }

// SetScale replaces the shared multiplier; non-finite or non-positive values
// are ignored so adaptation can never wedge the generator.
func (rw *RandomWalk) SetScale(s float64) {
	if s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s) {
		rw.scale = s
	}
}

const panicDimMismatch = "proposal: Propose called with wrong-length vector"
