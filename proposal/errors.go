// Package proposal: sentinel error set. All constructors and generators
// return these sentinels; tests match them via errors.Is.

package proposal

import "errors"

var (
	// ErrBadScale indicates a step width or scale that is not finite and positive.
	ErrBadScale = errors.New("proposal: step width must be finite and positive")

	// ErrNotPositiveDefinite indicates the supplied covariance matrix is not
	// symmetric positive definite (Cholesky factorization failed).
	ErrNotPositiveDefinite = errors.New("proposal: covariance is not positive definite")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// generator's configured dimensionality.
	ErrDimensionMismatch = errors.New("proposal: dimension mismatch")

	// ErrEmptyDim indicates a generator was requested for zero dimensions.
	ErrEmptyDim = errors.New("proposal: dimensionality must be at least 1")
)
