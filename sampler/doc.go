// Package sampler orchestrates N parallel Metropolis-Hastings chains:
// warm-up, sampling, thinning, adaptive tuning, and cross-chain aggregation.
//
// Each chain is constructed with its own proposal generator instance and its
// own PRNG stream derived from Options.Seed and the chain index, so the
// stepping phase is data-parallel with no shared mutable state and no locks.
// Chains run one goroutine each; Run blocks until every chain finishes (the
// aggregation barrier), then builds:
//
//   - Output            — thinned post-warm-up samples concatenated across chains
//   - AcceptanceRates   — one rate per chain
//   - MAP               — the single best-fitness ParameterSet observed
//     anywhere in the run (updated monotonically)
//   - MeanLogLikelihood — the per-iteration mean fitness across chains
//     (index-aligned; requires equal chain lengths)
//   - MarkovChains      — every chain's full, unthinned history for
//     diagnostics that need raw autocorrelation structure
//
// Thinning is applied only to Output; the full histories are always kept.
//
// Cancellation is cooperative: set Options.Ctx and every chain checks it
// once per iteration. After a cancelled run the partial histories are intact
// and usable by diagnostics; Run reports the context error.
//
// The target callback may be invoked concurrently from all chains. If your
// LogProb closes over mutable state, synchronize it yourself or give each
// chain its own closure via NewPerChain.
//
// Configuration errors (chain count, iteration counts, thinning interval,
// ragged initial states) fail fast at construction, before any sampling.
// Numerical trouble during stepping (NaN/Inf log-densities) is handled
// inside the chains and never surfaces from Run.
package sampler
