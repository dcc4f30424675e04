// Package mcstat is a statistical sampling toolkit centred on Markov Chain
// Monte Carlo: parallel Metropolis-Hastings chains, convergence diagnostics,
// and posterior post-processing.
//
// 🚀 What is mcstat?
//
//	A pure-Go library that brings together:
//		• Core primitives: parameter sets, reproducible per-chain PRNG streams
//		• Proposals: random-walk and full-covariance multivariate steps
//		• Chains: the Metropolis(-Hastings) accept/reject state machine
//		• Sampler: parallel multi-chain orchestration with warm-up,
//		  thinning, adaptive tuning and MAP tracking
//		• Diagnostics: effective sample size, Gelman-Rubin R-hat,
//		  autocorrelation, Raftery-Lewis minimum sample size
//		• Results: per-parameter summaries, KDE, histograms, and a
//		  versioned binary codec for the full results bundle
//
// ✨ Why choose mcstat?
//
//   - Reproducible – explicit seeds, one independent PRNG stream per chain
//   - Parallel by construction – chains share no mutable state while stepping
//   - Numerically forgiving – invalid log-densities reject, never crash
//   - Extensible – bring your own log-posterior and proposal strategy
//
// Everything is organized under focused subpackages:
//
//	core/        — ParameterSet, LogProb contract, PRNG streams
//	proposal/    — random-walk & covariance proposal generators + adaptation
//	chain/       — a single Metropolis-Hastings trajectory
//	sampler/     — multi-chain orchestration, warm-up, thinning, MAP
//	diagnostics/ — ESS, R-hat, ACF, minimum sample size
//	results/     — per-parameter reports, KDE, histogram, binary codec
//
// Quick sketch:
//
//	target := func(x []float64) float64 { // log N(2, 1)
//	    d := x[0] - 2
//	    return -0.5 * d * d
//	}
//	opts := sampler.DefaultOptions()
//	s, _ := sampler.New(target, [][]float64{{0}, {1}, {3}, {4}}, &opts)
//	_ = s.Run()
//	rhat, _ := diagnostics.GelmanRubin(s.MarkovChains(), opts.WarmupIterations)
//
// See each subpackage's doc.go for details and examples.
package mcstat
