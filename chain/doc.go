// Package chain implements a single Metropolis(-Hastings) trajectory: the
// accept/reject loop, the full iteration history, acceptance bookkeeping,
// and warm-up step-size adaptation.
//
// A Chain owns all of its mutable state — current point, history, accept
// counters, adaptive proposal scale, and one private *rand.Rand stream — so
// any number of chains can step concurrently without locks. The chain has
// two phases, Warm-up and Sampling; the transition after WarmupIterations
// steps changes nothing about loop mechanics, only which entries downstream
// consumers count (and when the proposal scale may still be retuned).
//
// Per iteration:
//
//  1. Propose a candidate θ' from the current state θ.
//  2. Evaluate the target log-density L(θ') exactly once.
//  3. Accept with probability min(1, exp(L(θ')−L(θ) + Hastings correction)).
//  4. Draw u ∈ [0,1) from the chain's own stream; accept iff u < probability.
//  5. Record the resulting state — accepted or not — as the next history
//     entry; every iteration appends exactly one entry.
//  6. Periodically during warm-up, retune the proposal scale toward the
//     target acceptance window.
//
// A NaN or ±Inf target value is treated as log-density −∞: the candidate is
// rejected unconditionally and sampling continues. Numerically invalid
// regions of parameter space are a normal part of an MCMC run, never an
// error.
//
// RunN checks its context once per iteration, so long runs cancel
// cooperatively; the history written so far stays valid and is safe to
// hand to diagnostics.
package chain
