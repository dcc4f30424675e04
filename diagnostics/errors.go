// Package diagnostics: sentinel error set. Tests match via errors.Is.

package diagnostics

import "errors"

var (
	// ErrNoChains indicates an empty chain collection.
	ErrNoChains = errors.New("diagnostics: no chains supplied")

	// ErrTooFewSamples indicates fewer than two usable samples per chain.
	ErrTooFewSamples = errors.New("diagnostics: need at least two samples")

	// ErrNoParameters indicates zero-dimensional parameter sets.
	ErrNoParameters = errors.New("diagnostics: need at least one parameter")

	// ErrLengthMismatch indicates chains of unequal post-warm-up length.
	ErrLengthMismatch = errors.New("diagnostics: chains have mismatched lengths")

	// ErrNegativeWarmup indicates a negative warm-up count.
	ErrNegativeWarmup = errors.New("diagnostics: warm-up count must be >= 0")

	// ErrEmptySeries indicates an empty sample series.
	ErrEmptySeries = errors.New("diagnostics: series is empty")

	// ErrBadLag indicates a negative maximum lag.
	ErrBadLag = errors.New("diagnostics: max lag must be >= 0")

	// ErrZeroVariance indicates a constant series, for which autocorrelation
	// is undefined.
	ErrZeroVariance = errors.New("diagnostics: series has zero variance")

	// ErrBadQuantile indicates a target quantile outside (0, 1).
	ErrBadQuantile = errors.New("diagnostics: quantile must lie in (0, 1)")

	// ErrBadTolerance indicates a non-positive tolerance.
	ErrBadTolerance = errors.New("diagnostics: tolerance must be positive")

	// ErrBadProbability indicates a probability outside (0, 1).
	ErrBadProbability = errors.New("diagnostics: probability must lie in (0, 1)")
)
