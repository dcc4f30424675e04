package chain_test

import (
	"context"
	"math"
	"testing"

	"github.com/probelab/mcstat/chain"
	"github.com/probelab/mcstat/core"
	"github.com/probelab/mcstat/proposal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logStdNormal is a well-behaved unimodal target: log N(0,1) up to a constant.
func logStdNormal(x []float64) float64 {
	return -0.5 * x[0] * x[0]
}

func newTestChain(t *testing.T, target core.LogProb, opts *chain.Options) *chain.Chain {
	t.Helper()
	prop, err := proposal.NewRandomWalk([]float64{0.8})
	require.NoError(t, err)
	c, err := chain.New(0, target, prop, []float64{0.5}, core.NewStream(99, 0), opts)
	require.NoError(t, err)

	return c
}

// TestNew_Validation covers constructor sentinels.
func TestNew_Validation(t *testing.T) {
	prop, _ := proposal.NewRandomWalk([]float64{1})
	rng := core.NewStream(1, 0)

	_, err := chain.New(0, nil, prop, []float64{0}, rng, nil)
	assert.ErrorIs(t, err, chain.ErrNilTarget)

	_, err = chain.New(0, logStdNormal, nil, []float64{0}, rng, nil)
	assert.ErrorIs(t, err, chain.ErrNilProposer)

	_, err = chain.New(0, logStdNormal, prop, []float64{0}, nil, nil)
	assert.ErrorIs(t, err, chain.ErrNilStream)

	_, err = chain.New(0, logStdNormal, prop, nil, rng, nil)
	assert.ErrorIs(t, err, core.ErrEmptyValues)

	_, err = chain.New(0, logStdNormal, prop, []float64{0, 1}, rng, nil)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	bad := chain.DefaultOptions()
	bad.WarmupIterations = -1
	_, err = chain.New(0, logStdNormal, prop, []float64{0}, rng, &bad)
	assert.ErrorIs(t, err, chain.ErrNegativeWarmup)

	bad = chain.DefaultOptions()
	bad.AdaptEvery = -5
	_, err = chain.New(0, logStdNormal, prop, []float64{0}, rng, &bad)
	assert.ErrorIs(t, err, chain.ErrBadAdaptWindow)
}

// TestChain_HistoryLengthEqualsIterations: with warm-up 0, history length
// after N iterations equals exactly N (one entry per iteration, accepted or
// rejected).
func TestChain_HistoryLengthEqualsIterations(t *testing.T) {
	c := newTestChain(t, logStdNormal, nil)

	const n = 257
	require.NoError(t, c.RunN(context.Background(), n))

	assert.Equal(t, n, c.Len())
	assert.Len(t, c.History(), n)
}

// TestChain_AcceptanceRateBounds: rate lies in [0,1] for any run length ≥ 1.
func TestChain_AcceptanceRateBounds(t *testing.T) {
	c := newTestChain(t, logStdNormal, nil)
	assert.Zero(t, c.AcceptanceRate(), "no steps yet")

	for i := 1; i <= 50; i++ {
		c.Step()
		r := c.AcceptanceRate()
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}

// TestChain_NaNTargetNeverMoves: a callback returning NaN for every proposal
// means the chain never accepts; the final state equals the initial state
// and the acceptance rate is exactly 0.
func TestChain_NaNTargetNeverMoves(t *testing.T) {
	calls := 0
	nanTarget := func(_ []float64) float64 {
		calls++

		return math.NaN()
	}
	c := newTestChain(t, nanTarget, nil)

	const n = 100
	require.NoError(t, c.RunN(context.Background(), n))

	assert.Equal(t, 0.0, c.AcceptanceRate())
	cur := c.Current()
	assert.Equal(t, []float64{0.5}, cur.Values, "state must never leave the initial point")
	assert.True(t, math.IsInf(cur.Fitness, -1))
	assert.Equal(t, n+1, calls, "target must be evaluated exactly once per proposal plus once at setup")

	for _, p := range c.History() {
		assert.Equal(t, []float64{0.5}, p.Values)
	}
}

// TestChain_Reproducible: identical seeds replay identical trajectories.
func TestChain_Reproducible(t *testing.T) {
	run := func() []core.ParameterSet {
		prop, _ := proposal.NewRandomWalk([]float64{0.8})
		c, err := chain.New(0, logStdNormal, prop, []float64{0.5}, core.NewStream(7, 0), nil)
		require.NoError(t, err)
		require.NoError(t, c.RunN(context.Background(), 200))

		return c.History()
	}

	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "trajectories diverge at iteration %d", i)
	}
}

// TestChain_HistoryIsSnapshot: mutating a returned history must not reach
// the chain's internal state.
func TestChain_HistoryIsSnapshot(t *testing.T) {
	c := newTestChain(t, logStdNormal, nil)
	c.Step()

	h := c.History()
	h[0].Values[0] = 1234

	assert.NotEqual(t, 1234.0, c.History()[0].Values[0])
}

// TestChain_Thinned verifies the query-time thinning view.
func TestChain_Thinned(t *testing.T) {
	c := newTestChain(t, logStdNormal, nil)
	require.NoError(t, c.RunN(context.Background(), 10))

	thinned, err := c.Thinned(4, 2)
	require.NoError(t, err)
	assert.Len(t, thinned, 3, "entries 4, 6, 8 survive")

	full := c.History()
	assert.True(t, thinned[0].Equal(full[4]))
	assert.True(t, thinned[1].Equal(full[6]))
	assert.True(t, thinned[2].Equal(full[8]))

	_, err = c.Thinned(-1, 2)
	assert.ErrorIs(t, err, chain.ErrNegativeWarmup)
	_, err = c.Thinned(0, 0)
	assert.ErrorIs(t, err, chain.ErrBadThinning)
}

// TestChain_Cancellation: RunN stops at an iteration boundary and the
// partial history stays valid.
func TestChain_Cancellation(t *testing.T) {
	c := newTestChain(t, logStdNormal, nil)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, c.RunN(ctx, 25))
	cancel()
	err := c.RunN(ctx, 1000)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 25, c.Len(), "no torn state after cancellation")
}

// TestChain_AdaptsDuringWarmup: with a tiny target the proposal scale must
// shrink when everything is rejected inside the warm-up window.
func TestChain_AdaptsDuringWarmup(t *testing.T) {
	rejectAll := func(_ []float64) float64 { return math.Inf(-1) }

	prop, _ := proposal.NewRandomWalk([]float64{1})
	opts := chain.Options{WarmupIterations: 100, AdaptEvery: 10, TargetAcceptance: 0.3}
	c, err := chain.New(0, rejectAll, prop, []float64{0}, core.NewStream(13, 0), &opts)
	require.NoError(t, err)

	require.NoError(t, c.RunN(context.Background(), 100))
	assert.Less(t, prop.Scale(), 1.0, "all-reject warm-up must shrink the step size")
}

// TestChain_NoAdaptationAfterWarmup: the scale is frozen once sampling starts.
func TestChain_NoAdaptationAfterWarmup(t *testing.T) {
	rejectAll := func(_ []float64) float64 { return math.Inf(-1) }

	prop, _ := proposal.NewRandomWalk([]float64{1})
	opts := chain.Options{WarmupIterations: 0, AdaptEvery: 10, TargetAcceptance: 0.3}
	c, err := chain.New(0, rejectAll, prop, []float64{0}, core.NewStream(13, 0), &opts)
	require.NoError(t, err)

	require.NoError(t, c.RunN(context.Background(), 100))
	assert.Equal(t, 1.0, prop.Scale(), "no warm-up ⇒ no adaptation")
}
