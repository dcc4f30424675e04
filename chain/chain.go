// File: chain.go
// Role: the Metropolis-Hastings accept/reject state machine.
// Concurrency:
//   - A Chain is single-goroutine: all mutable state (current point, history,
//     counters, proposal scale, PRNG) is owned exclusively by the chain.
//     Views hand out deep copies, so a finished chain can be read from any
//     goroutine.
// Determinism:
//   - Exactly one target evaluation and one uniform draw per iteration, so a
//     fixed (seed, initial state) pair replays the identical trajectory.

package chain

import (
	"context"
	"math"
	"math/rand"

	"github.com/probelab/mcstat/core"
	"github.com/probelab/mcstat/proposal"
)

// Chain is one independent Markov chain. Construct with New; zero value is
// not usable.
type Chain struct {
	index  int
	target core.LogProb
	prop   proposal.Proposer
	rng    *rand.Rand

	current core.ParameterSet
	history []core.ParameterSet

	steps    int
	accepted int

	warmup         int
	adaptEvery     int
	targetRate     float64
	windowAccepted int
}

// New builds a chain at the given initial point. The target is evaluated
// once to seed the initial fitness; a non-finite result becomes −∞ so the
// first finite candidate is accepted unconditionally.
//
// Every chain must receive its own rng stream (see core.NewStream) and its
// own Proposer instance; sharing either across chains breaks both
// reproducibility and the race-free stepping guarantee.
func New(index int, target core.LogProb, prop proposal.Proposer, initial []float64, rng *rand.Rand, opts *Options) (*Chain, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if prop == nil {
		return nil, ErrNilProposer
	}
	if rng == nil {
		return nil, ErrNilStream
	}
	if len(initial) == 0 {
		return nil, core.ErrEmptyValues
	}
	if prop.Dim() != len(initial) {
		return nil, core.ErrDimensionMismatch
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.WarmupIterations < 0 {
		return nil, ErrNegativeWarmup
	}
	if o.AdaptEvery < 0 {
		return nil, ErrBadAdaptWindow
	}

	start, err := core.New(initial, core.UsableFitness(target(initial)))
	if err != nil {
		return nil, err
	}

	return &Chain{
		index:      index,
		target:     target,
		prop:       prop,
		rng:        rng,
		current:    start,
		warmup:     o.WarmupIterations,
		adaptEvery: o.AdaptEvery,
		targetRate: o.TargetAcceptance,
	}, nil
}

// Step advances the chain by one iteration: propose, evaluate the target
// exactly once, accept or reject, and record the resulting state. Invalid
// (NaN/±Inf) target values reject the candidate; Step never fails.
func (c *Chain) Step() {
	candidate := c.prop.Propose(c.rng, c.current.Values)
	fitness := core.UsableFitness(c.target(candidate))

	// min(1, exp(ΔL + Hastings correction)); −∞ candidate fitness ⇒ 0.
	probability := 0.0
	if !math.IsInf(fitness, -1) {
		logAlpha := fitness - c.current.Fitness + c.prop.LogRatio(c.current.Values, candidate)
		if logAlpha >= 0 {
			probability = 1
		} else {
			probability = math.Exp(logAlpha)
		}
	}

	if c.rng.Float64() < probability {
		// candidate is a fresh slice owned by the proposer call; safe to adopt.
		c.current = core.ParameterSet{Values: candidate, Fitness: fitness}
		c.accepted++
		c.windowAccepted++
	}

	c.history = append(c.history, c.current.Clone())
	c.steps++
	c.maybeAdapt()
}

// maybeAdapt retunes the proposal scale at the end of each warm-up window.
func (c *Chain) maybeAdapt() {
	if c.adaptEvery == 0 || c.steps > c.warmup || c.steps%c.adaptEvery != 0 {
		return
	}
	adaptive, ok := c.prop.(proposal.Adaptive)
	if !ok {
		return
	}
	windowRate := float64(c.windowAccepted) / float64(c.adaptEvery)
	adaptive.SetScale(proposal.AdaptScale(adaptive.Scale(), windowRate, c.targetRate))
	c.windowAccepted = 0
}

// RunN performs n iterations, checking ctx once per iteration. On
// cancellation it returns ctx's error; the history written so far remains
// valid and complete up to that iteration.
func (c *Chain) RunN(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		c.Step()
	}

	return nil
}

// Index reports the chain's position within its sampler.
func (c *Chain) Index() int { return c.index }

// Len reports the number of completed iterations (== history length).
func (c *Chain) Len() int { return c.steps }

// Current returns a deep copy of the chain's present state.
func (c *Chain) Current() core.ParameterSet { return c.current.Clone() }

// AcceptanceRate reports accepted/steps in [0,1]; 0 before the first step.
func (c *Chain) AcceptanceRate() float64 {
	if c.steps == 0 {
		return 0
	}

	return float64(c.accepted) / float64(c.steps)
}

// History returns a deep copy of the full per-iteration history, warm-up
// included. Thinning is a query-time view (see Thinned); the raw history is
// always retained for diagnostics that need autocorrelation structure.
func (c *Chain) History() []core.ParameterSet {
	return core.CloneHistory(c.history)
}

// Thinned returns every interval-th post-warm-up entry (deep copies),
// starting with the first post-warm-up sample. The raw history is untouched.
func (c *Chain) Thinned(warmup, interval int) ([]core.ParameterSet, error) {
	if warmup < 0 {
		return nil, ErrNegativeWarmup
	}
	if interval < 1 {
		return nil, ErrBadThinning
	}

	var out []core.ParameterSet
	for i := warmup; i < len(c.history); i += interval {
		out = append(out, c.history[i].Clone())
	}

	return out, nil
}
