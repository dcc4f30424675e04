// Package results: sentinel error set. Tests match via errors.Is.

package results

import "errors"

var (
	// ErrBadBins indicates a histogram bucket count below 1.
	ErrBadBins = errors.New("results: bins must be >= 1")

	// ErrBadKDEPoints indicates a density curve resolution below 2.
	ErrBadKDEPoints = errors.New("results: KDE points must be >= 2")

	// ErrBadAlpha indicates a credible-interval tail mass outside (0, 1).
	ErrBadAlpha = errors.New("results: alpha must lie in (0, 1)")

	// ErrBadLag indicates a maximum autocorrelation lag below 1.
	ErrBadLag = errors.New("results: max lag must be >= 1")

	// ErrNoSamples indicates an empty output collection.
	ErrNoSamples = errors.New("results: no samples in output")

	// ErrNoChains indicates no chain histories were supplied.
	ErrNoChains = errors.New("results: no chain histories")

	// ErrLengthMismatch indicates ragged chain histories.
	ErrLengthMismatch = errors.New("results: chains have mismatched lengths")

	// ErrNegativeWarmup indicates a negative warm-up count.
	ErrNegativeWarmup = errors.New("results: warm-up count must be >= 0")

	// ErrBadMagic indicates the buffer does not start with the report magic.
	ErrBadMagic = errors.New("results: bad magic, not a report payload")

	// ErrBadVersion indicates an unsupported payload version.
	ErrBadVersion = errors.New("results: unsupported payload version")

	// ErrCorruptPayload indicates a truncated or inconsistent payload.
	ErrCorruptPayload = errors.New("results: corrupt payload")
)
