package core_test

import (
	"math"
	"testing"

	"github.com/probelab/mcstat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_CopiesInput verifies that New snapshots the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	p, err := core.New(src, -4.5)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, p.Values[0], "New must copy the input slice")
	assert.Equal(t, -4.5, p.Fitness)
	assert.Equal(t, 3, p.Dim())
}

// TestNew_EmptyValues verifies the ErrEmptyValues sentinel.
func TestNew_EmptyValues(t *testing.T) {
	_, err := core.New(nil, 0)
	assert.ErrorIs(t, err, core.ErrEmptyValues)

	_, err = core.New([]float64{}, 0)
	assert.ErrorIs(t, err, core.ErrEmptyValues)
}

// TestClone_Independence verifies value equality and reference distinctness:
// mutating the clone's Values never affects the original.
func TestClone_Independence(t *testing.T) {
	p, err := core.New([]float64{0.5, -1.25}, 7)
	require.NoError(t, err)

	q := p.Clone()
	assert.True(t, p.Equal(q), "clone must be value-equal")

	q.Values[1] = 42
	assert.Equal(t, -1.25, p.Values[1], "clone must not share backing storage")
	assert.False(t, p.Equal(q))
}

// TestEqual_NaNFitness verifies that NaN fitness compares equal to NaN
// fitness, so round-tripped records stay comparable.
func TestEqual_NaNFitness(t *testing.T) {
	a, _ := core.New([]float64{1}, math.NaN())
	b, _ := core.New([]float64{1}, math.NaN())
	c, _ := core.New([]float64{1}, 0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestEqual_NaNValues verifies the same NaN rule for Values entries, so a
// serialized record containing NaN parameters still round-trips as equal.
func TestEqual_NaNValues(t *testing.T) {
	a, _ := core.New([]float64{math.NaN(), 2}, 0)
	b, _ := core.New([]float64{math.NaN(), 2}, 0)
	c, _ := core.New([]float64{1, 2}, 0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
}

// TestCloneHistory_DeepCopy verifies that CloneHistory copies every entry.
func TestCloneHistory_DeepCopy(t *testing.T) {
	a, _ := core.New([]float64{1, 2}, -1)
	b, _ := core.New([]float64{3, 4}, -2)
	hist := []core.ParameterSet{a, b}

	cp := core.CloneHistory(hist)
	require.Len(t, cp, 2)

	cp[0].Values[0] = 100
	assert.Equal(t, 1.0, hist[0].Values[0], "history copy must be deep")

	assert.Nil(t, core.CloneHistory(nil))
}

// TestUsableFitness maps non-finite densities onto -Inf and passes finite
// values through untouched.
func TestUsableFitness(t *testing.T) {
	assert.Equal(t, -3.5, core.UsableFitness(-3.5))
	assert.True(t, math.IsInf(core.UsableFitness(math.NaN()), -1))
	assert.True(t, math.IsInf(core.UsableFitness(math.Inf(1)), -1))
	assert.True(t, math.IsInf(core.UsableFitness(math.Inf(-1)), -1))
}
