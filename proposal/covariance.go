// File: covariance.go
// Role: full-covariance multivariate normal proposal via Cholesky factor.
// Numerics:
//   - The factor L is computed once at construction; a Propose call is one
//     N(0,1) vector draw plus a lower-triangular multiply, O(P²).

package proposal

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Covariance proposes θ' = θ + scale·L·z where L·Lᵀ = Σ is the Cholesky
// factorization of the supplied covariance and z is a vector of independent
// standard normals from the chain's stream. Suited to correlated parameter
// spaces where axis-aligned random walks mix poorly. Symmetric: LogRatio 0.
type Covariance struct {
	lower *mat.TriDense
	dim   int
	scale float64
}

// NewCovariance factorizes sigma and builds the generator. Returns
// ErrNotPositiveDefinite when sigma is not symmetric positive definite.
func NewCovariance(sigma *mat.SymDense) (*Covariance, error) {
	if sigma == nil || sigma.SymmetricDim() == 0 {
		return nil, ErrEmptyDim
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		return nil, ErrNotPositiveDefinite
	}
	lower := mat.NewTriDense(sigma.SymmetricDim(), mat.Lower, nil)
	chol.LTo(lower)

	return &Covariance{lower: lower, dim: sigma.SymmetricDim(), scale: 1}, nil
}

// CovarianceFactory returns a Factory producing a fresh Covariance generator
// per chain from sigma. The factory errors when a chain's dimensionality
// does not match sigma.
func CovarianceFactory(sigma *mat.SymDense) Factory {
	return func(dim int) (Proposer, error) {
		if sigma == nil || sigma.SymmetricDim() != dim {
			return nil, ErrDimensionMismatch
		}

		return NewCovariance(sigma)
	}
}

// Dim reports the generator's dimensionality.
func (cv *Covariance) Dim() int { return cv.dim }

// Propose returns current + scale·L·z for a fresh standard-normal z.
func (cv *Covariance) Propose(rng *rand.Rand, current []float64) []float64 {
	if len(current) != cv.dim {
		panic(panicDimMismatch)
	}
	z := make([]float64, cv.dim)
	for i := range z {
		z[i] = rng.NormFloat64()
	}
	out := make([]float64, cv.dim)
	// Lower-triangular multiply: step_j = Σ_{k≤j} L[j,k]·z[k].
	for j := 0; j < cv.dim; j++ {
		step := 0.0
		for k := 0; k <= j; k++ {
			step += cv.lower.At(j, k) * z[k]
		}
		out[j] = current[j] + cv.scale*step
	}

	return out
}

// LogRatio is 0: the multivariate normal step is symmetric.
func (cv *Covariance) LogRatio(_, _ []float64) float64 { return 0 }

// Scale reports the global step-size multiplier.
func (cv *Covariance) Scale() float64 { return cv.scale }

// SetScale replaces the multiplier; non-finite or non-positive values are ignored.
func (cv *Covariance) SetScale(s float64) {
	if s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s) {
		cv.scale = s
	}
}
