// File: sampler.go
// Role: construction, parallel execution, and cross-chain aggregation.
// Concurrency:
//   - One goroutine per chain via conc's error pool; no shared mutable state
//     during stepping. Aggregation happens strictly after the pool barrier,
//     against histories that are no longer written.

package sampler

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/probelab/mcstat/chain"
	"github.com/probelab/mcstat/core"
	"github.com/probelab/mcstat/proposal"
)

// Sampler drives N independent chains and aggregates their output.
// Construct with New or NewPerChain; zero value is not usable.
type Sampler struct {
	opts   Options
	chains []*chain.Chain

	ran     bool
	output  []core.ParameterSet
	rates   []float64
	mapBest core.ParameterSet
	hasMAP  bool
}

// New builds a sampler with one chain per initial state, all evaluating the
// same target. The target may be called concurrently from every chain; if it
// closes over mutable state, use NewPerChain with independent closures
// instead.
//
// Configuration is validated here, before any sampling begins.
func New(target core.LogProb, initial [][]float64, opts *Options) (*Sampler, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	targets := make([]core.LogProb, len(initial))
	for i := range targets {
		targets[i] = target
	}

	return NewPerChain(targets, initial, opts)
}

// NewPerChain builds a sampler where chain i evaluates targets[i]. All
// targets must describe the same density; per-chain instances exist so that
// stateful callbacks need no synchronization.
func NewPerChain(targets []core.LogProb, initial [][]float64, opts *Options) (*Sampler, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Chains == 0 {
		o.Chains = len(initial)
	}
	if o.Proposal == nil {
		o.Proposal = proposal.RandomWalkFactory(proposal.DefaultStepWidth)
	}
	if o.AdaptEvery == 0 {
		o.AdaptEvery = chain.DefaultAdaptEvery
	} else if o.AdaptEvery < 0 {
		// chain.Options uses 0 for "no adaptation"; negative requests it here.
		o.AdaptEvery = 0
	}
	if o.TargetAcceptance == 0 {
		o.TargetAcceptance = proposal.DefaultTargetAcceptance
	}

	if err := validate(&o, targets, initial); err != nil {
		return nil, err
	}

	chainOpts := chain.Options{
		WarmupIterations: o.WarmupIterations,
		AdaptEvery:       o.AdaptEvery,
		TargetAcceptance: o.TargetAcceptance,
	}

	chains := make([]*chain.Chain, o.Chains)
	dim := len(initial[0])
	for i := range chains {
		prop, err := o.Proposal(dim)
		if err != nil {
			return nil, err
		}
		c, err := chain.New(i, targets[i], prop, initial[i], core.NewStream(o.Seed, i), &chainOpts)
		if err != nil {
			return nil, err
		}
		chains[i] = c
	}

	return &Sampler{opts: o, chains: chains}, nil
}

// validate fails fast on configuration errors.
func validate(o *Options, targets []core.LogProb, initial [][]float64) error {
	if o.Chains < 1 {
		return ErrTooFewChains
	}
	if o.SamplingIterations < 1 {
		return ErrBadIterations
	}
	if o.WarmupIterations < 0 {
		return ErrNegativeWarmup
	}
	if o.ThinningInterval < 1 {
		return ErrBadThinning
	}
	if len(initial) != o.Chains || len(targets) != o.Chains {
		return ErrInitialMismatch
	}
	for i := range targets {
		if targets[i] == nil {
			return ErrNilTarget
		}
	}
	dim := len(initial[0])
	if dim == 0 {
		return core.ErrEmptyValues
	}
	for _, state := range initial[1:] {
		if len(state) != dim {
			return core.ErrDimensionMismatch
		}
	}

	return nil
}

// Run executes every chain for WarmupIterations + SamplingIterations steps,
// one goroutine per chain, then aggregates at the barrier. On cancellation
// the context error is returned and the partial aggregates remain valid.
// Run may be called once.
func (s *Sampler) Run() error {
	if s.ran {
		return ErrAlreadyRun
	}
	s.ran = true

	ctx := s.opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	total := s.opts.WarmupIterations + s.opts.SamplingIterations

	p := pool.New().WithErrors()
	for _, c := range s.chains {
		c := c
		p.Go(func() error { return c.RunN(ctx, total) })
	}
	runErr := p.Wait()

	s.aggregate()

	return runErr
}

// aggregate builds the cross-chain views. Runs strictly after the barrier.
func (s *Sampler) aggregate() {
	s.rates = make([]float64, len(s.chains))
	s.output = nil
	for i, c := range s.chains {
		s.rates[i] = c.AcceptanceRate()

		thinned, err := c.Thinned(s.opts.WarmupIterations, s.opts.ThinningInterval)
		if err != nil {
			// warm-up and interval were validated in NewPerChain
			panic(err)
		}
		s.output = append(s.output, thinned...)

		// MAP: single pass over the full history, monotone maximum.
		for _, p := range c.History() {
			if !s.hasMAP || p.Fitness > s.mapBest.Fitness {
				s.mapBest = p
				s.hasMAP = true
			}
		}
	}
}

// NumChains reports the number of chains.
func (s *Sampler) NumChains() int { return len(s.chains) }

// WarmupIterations reports the configured warm-up length.
func (s *Sampler) WarmupIterations() int { return s.opts.WarmupIterations }

// Output returns the thinned post-warm-up samples concatenated across chains
// (deep copies). Empty before Run.
func (s *Sampler) Output() []core.ParameterSet {
	return core.CloneHistory(s.output)
}

// AcceptanceRates returns one acceptance rate per chain. Empty before Run.
func (s *Sampler) AcceptanceRates() []float64 {
	out := make([]float64, len(s.rates))
	copy(out, s.rates)

	return out
}

// MAP returns the maximum-a-posteriori estimate: the single highest-fitness
// ParameterSet observed across all chains and iterations, warm-up included.
func (s *Sampler) MAP() (core.ParameterSet, error) {
	if !s.hasMAP {
		return core.ParameterSet{}, ErrNotRun
	}

	return s.mapBest.Clone(), nil
}

// MarkovChains returns every chain's full, unthinned history (deep copies),
// for diagnostics that need raw autocorrelation structure.
func (s *Sampler) MarkovChains() [][]core.ParameterSet {
	out := make([][]core.ParameterSet, len(s.chains))
	for i, c := range s.chains {
		out[i] = c.History()
	}

	return out
}

// MeanLogLikelihood returns the per-iteration mean fitness across chains,
// index-aligned over the full run (warm-up included). Chains of unequal
// length — possible after cancellation — yield ErrLengthMismatch.
func (s *Sampler) MeanLogLikelihood() ([]float64, error) {
	if !s.ran {
		return nil, ErrNotRun
	}
	n := s.chains[0].Len()
	for _, c := range s.chains[1:] {
		if c.Len() != n {
			return nil, ErrLengthMismatch
		}
	}

	mean := make([]float64, n)
	m := float64(len(s.chains))
	for _, c := range s.chains {
		for i, p := range c.History() {
			mean[i] += p.Fitness / m
		}
	}

	return mean, nil
}
