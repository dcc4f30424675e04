// Package diagnostics computes MCMC convergence statistics from chain
// histories: autocorrelation, effective sample size, the Gelman-Rubin R-hat,
// and the Raftery-Lewis minimum sample size.
//
// Everything here is a stateless, read-only function over fully written
// histories — diagnostics never own or mutate chain state, so they can run
// concurrently with each other (e.g. one goroutine per parameter).
//
// Conventions reproduced exactly, for parity with the reference (R)
// implementations:
//
//   - ACF: mean-centered lagged products normalized by the lag-0 sum of
//     squares; lag 0 is identically 1.
//   - ESS: sum positive autocorrelations over lags 1..N/2, truncating at the
//     first lag whose autocorrelation drops below 0.05, then
//     ESS = min(N / (1 + 2·Σρ), N). A known-biased-but-standard heuristic.
//   - R-hat: between-chain variance B = N/(M−1)·Σ(mean_i − grand)², within
//     W = mean of chain variances, pooled V = ((N−1)·W + B)/N,
//     R̂ = √(V/W). Values near 1 indicate convergence.
//
// Degradation rules: R-hat with fewer than two chains returns NaN per
// parameter (best-effort auxiliary output, not an error), while too few
// iterations or zero parameters indicate a caller bug and return an error.
//
// Errors:
//
//	ErrNoChains       - no chains supplied at all.
//	ErrTooFewSamples  - fewer than two post-warm-up samples per chain.
//	ErrNoParameters   - zero-dimensional parameter sets.
//	ErrLengthMismatch - chains of unequal post-warm-up length.
//	ErrNegativeWarmup - negative warm-up count.
//	ErrEmptySeries    - empty input series.
//	ErrBadLag         - negative maximum lag.
//	ErrZeroVariance   - constant series; autocorrelation is undefined.
//	ErrBadQuantile, ErrBadTolerance, ErrBadProbability - minimum-sample-size
//	inputs outside their domains.
package diagnostics
