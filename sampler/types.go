// File: types.go
// Role: sampler options, documented defaults, sentinel errors.

package sampler

import (
	"context"
	"errors"

	"github.com/probelab/mcstat/chain"
	"github.com/probelab/mcstat/proposal"
)

// Defaults - single source of truth for run-shape behavior.
const (
	// DefaultChains is the number of parallel chains. Gelman-Rubin needs at
	// least two; four is the conventional choice.
	DefaultChains = 4

	// DefaultWarmupIterations are discarded before samples count as output.
	DefaultWarmupIterations = 1000

	// DefaultSamplingIterations are the post-warm-up iterations per chain.
	DefaultSamplingIterations = 5000

	// DefaultThinningInterval of 1 keeps every post-warm-up sample.
	DefaultThinningInterval = 1

	// DefaultSeed is the master seed per-chain streams are derived from.
	DefaultSeed = 20
)

// Sentinel errors for sampler configuration and views.
var (
	// ErrNilTarget indicates a nil log-density callback.
	ErrNilTarget = errors.New("sampler: target log-density is nil")

	// ErrTooFewChains indicates a chain count below 1.
	ErrTooFewChains = errors.New("sampler: number of chains must be >= 1")

	// ErrBadIterations indicates a sampling iteration count below 1.
	ErrBadIterations = errors.New("sampler: sampling iterations must be >= 1")

	// ErrNegativeWarmup indicates a negative warm-up iteration count.
	ErrNegativeWarmup = errors.New("sampler: warm-up iterations must be >= 0")

	// ErrBadThinning indicates a thinning interval below 1.
	ErrBadThinning = errors.New("sampler: thinning interval must be >= 1")

	// ErrInitialMismatch indicates len(initial states) != number of chains.
	ErrInitialMismatch = errors.New("sampler: one initial state required per chain")

	// ErrAlreadyRun indicates Run was invoked twice on the same sampler.
	ErrAlreadyRun = errors.New("sampler: Run may only be called once")

	// ErrNotRun indicates an aggregate view was requested before Run.
	ErrNotRun = errors.New("sampler: Run has not completed")

	// ErrLengthMismatch indicates chains of unequal length where index-aligned
	// aggregation (mean log-likelihood) was requested.
	ErrLengthMismatch = errors.New("sampler: chains have mismatched lengths")
)

// Options configures a sampling run.
//
// Fields:
//   - Chains             — number of parallel chains (≥ 1; 0 ⇒ one per initial state).
//   - WarmupIterations   — iterations discarded from output (≥ 0).
//   - SamplingIterations — post-warm-up iterations per chain (≥ 1).
//   - ThinningInterval   — keep every k-th post-warm-up sample in Output (≥ 1).
//   - Seed               — master seed; chain i draws from core.NewStream(Seed, i).
//   - Proposal           — factory building one generator per chain
//     (nil ⇒ random walk with proposal.DefaultStepWidth).
//   - TargetAcceptance   — warm-up tuning target (0 ⇒ proposal default).
//   - AdaptEvery         — warm-up window between retunings (0 ⇒ chain
//     default, negative ⇒ adaptation disabled).
//   - Ctx                — optional cancellation context, checked once per
//     iteration per chain.
type Options struct {
	Chains             int
	WarmupIterations   int
	SamplingIterations int
	ThinningInterval   int
	Seed               uint64
	Proposal           proposal.Factory
	TargetAcceptance   float64
	AdaptEvery         int
	Ctx                context.Context
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Chains:             DefaultChains,
		WarmupIterations:   DefaultWarmupIterations,
		SamplingIterations: DefaultSamplingIterations,
		ThinningInterval:   DefaultThinningInterval,
		Seed:               DefaultSeed,
		Proposal:           proposal.RandomWalkFactory(proposal.DefaultStepWidth),
		TargetAcceptance:   proposal.DefaultTargetAcceptance,
		AdaptEvery:         chain.DefaultAdaptEvery,
	}
}
