// Package proposal generates Metropolis-Hastings candidate states and tunes
// their step size during warm-up.
//
// Two generators are provided:
//
//   - RandomWalk — independent Gaussian steps per dimension, each with its
//     own width, all modulated by a shared adaptive scale. The workhorse for
//     low-dimensional or weakly correlated posteriors.
//   - Covariance — a full multivariate normal step built from the Cholesky
//     factor of a caller-supplied covariance matrix. Use it when parameters
//     are strongly correlated and axis-aligned steps mix poorly.
//
// Both are symmetric (LogRatio reports 0), so the plain Metropolis rule
// applies; asymmetric generators can implement Proposer and return a
// non-zero Hastings correction.
//
// Every Propose call draws exclusively from the *rand.Rand handed in by the
// owning chain — generators hold no randomness of their own, which keeps
// chains reproducible and parallel-safe.
//
// AdaptScale implements the tangent rule for retargeting the acceptance
// rate during warm-up: the scale is multiplied by
// tan(π/2·observed)/tan(π/2·target), clamped to a sane window so a streak
// of rejections cannot collapse the step size to zero.
//
// Errors:
//
//	ErrBadScale            - a width or scale is not finite and positive.
//	ErrNotPositiveDefinite - covariance matrix failed Cholesky factorization.
//	ErrDimensionMismatch   - vector length differs from the generator's dim.
package proposal
