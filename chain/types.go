// File: types.go
// Role: chain options, documented defaults, sentinel errors.

package chain

import (
	"errors"

	"github.com/probelab/mcstat/proposal"
)

// Defaults - single source of truth for chain tuning behavior.
const (
	// DefaultAdaptEvery is the warm-up window length (in iterations) between
	// proposal-scale adjustments. Zero disables adaptation.
	DefaultAdaptEvery = 200

	// DefaultTargetAcceptance mirrors proposal.DefaultTargetAcceptance.
	DefaultTargetAcceptance = proposal.DefaultTargetAcceptance
)

// Sentinel errors for chain construction and views.
var (
	// ErrNilTarget indicates a nil log-density callback.
	ErrNilTarget = errors.New("chain: target log-density is nil")

	// ErrNilProposer indicates a nil proposal generator.
	ErrNilProposer = errors.New("chain: proposer is nil")

	// ErrNilStream indicates a nil PRNG stream; every chain must own one.
	ErrNilStream = errors.New("chain: random stream is nil")

	// ErrNegativeWarmup indicates a negative warm-up iteration count.
	ErrNegativeWarmup = errors.New("chain: warm-up iterations must be >= 0")

	// ErrBadAdaptWindow indicates a negative adaptation window.
	ErrBadAdaptWindow = errors.New("chain: adapt window must be >= 0")

	// ErrBadThinning indicates a thinning interval below 1.
	ErrBadThinning = errors.New("chain: thinning interval must be >= 1")
)

// Options configures a single chain.
//
// Fields:
//   - WarmupIterations — steps considered warm-up; adaptation happens only
//     inside this window and downstream consumers discard these entries.
//   - AdaptEvery       — retune the proposal scale every AdaptEvery warm-up
//     steps (0 disables adaptation entirely).
//   - TargetAcceptance — acceptance rate the retuning steers toward.
type Options struct {
	WarmupIterations int
	AdaptEvery       int
	TargetAcceptance float64
}

// DefaultOptions returns the documented defaults: no warm-up, adaptation
// every DefaultAdaptEvery steps toward DefaultTargetAcceptance.
func DefaultOptions() Options {
	return Options{
		WarmupIterations: 0,
		AdaptEvery:       DefaultAdaptEvery,
		TargetAcceptance: DefaultTargetAcceptance,
	}
}
