// Package results turns completed sampler output into an immutable,
// serializable report: per-parameter summary statistics, kernel density
// estimates, histograms, and chain-averaged autocorrelation.
//
// A Report is built exactly once (Build or FromSampler) and is read-only
// afterwards; every accessor hands out copies, so reports can be shared
// across goroutines freely.
//
// Per parameter, the report carries:
//
//   - Mean, Median, StdDev of the thinned post-warm-up output
//   - credible interval bounds at a configurable tail mass Alpha
//     (empirical quantiles at Alpha/2 and 1−Alpha/2)
//   - a Gaussian kernel density estimate over KDEPoints points, with the
//     Silverman normal-reference bandwidth
//   - a histogram over Bins uniform buckets
//   - the autocorrelation function averaged across chains: the ACF is
//     computed per chain on its post-warm-up series and the per-chain
//     values are averaged at each lag. Averaging per-chain ACFs and
//     computing one ACF on the pooled output are different statistics;
//     the per-chain-averaged convention is the one this package keeps.
//     Constant (zero-variance) chains are skipped in the average.
//
// Serialization: Encode writes the full bundle — nested chain histories
// included — into an explicit, versioned, little-endian binary layout
// (magic header + length-prefixed float64 arrays). Decode reproduces every
// field exactly; a corrupt or truncated buffer yields an error, never a
// partially populated report.
//
// Errors:
//
//	ErrBadBins, ErrBadKDEPoints, ErrBadAlpha, ErrBadLag - invalid Options.
//	ErrNoSamples      - empty output collection.
//	ErrNoChains       - no chain histories supplied.
//	ErrLengthMismatch - ragged chain histories.
//	ErrBadMagic, ErrBadVersion, ErrCorruptPayload - decoding failures.
package results
