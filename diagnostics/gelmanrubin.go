// File: gelmanrubin.go
// Role: Gelman-Rubin potential scale reduction factor (R-hat).

package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/probelab/mcstat/core"
)

// GelmanRubin computes the per-parameter R-hat from M chain histories,
// discarding the first warmup entries of each. For each parameter:
//
//	B  = N/(M−1) · Σ (chain_mean − grand_mean)²   (between-chain variance)
//	W  = mean of per-chain sample variances        (within-chain variance)
//	V  = ((N−1)·W + B) / N                         (pooled estimate)
//	R̂ = √(V / W)
//
// With fewer than two chains, between-chain variance does not exist:
// the result is a NaN per parameter, not an error — diagnostics are
// best-effort auxiliary output. Too few samples (N < 2), zero parameters,
// ragged chains, or a negative warmup indicate caller bugs and return the
// corresponding sentinel.
func GelmanRubin(chains [][]core.ParameterSet, warmup int) ([]float64, error) {
	if warmup < 0 {
		return nil, ErrNegativeWarmup
	}
	m := len(chains)
	if m == 0 {
		return nil, ErrNoChains
	}

	n := len(chains[0]) - warmup
	for _, c := range chains[1:] {
		if len(c)-warmup != n {
			return nil, ErrLengthMismatch
		}
	}
	if n < 2 {
		return nil, ErrTooFewSamples
	}
	p := chains[0][warmup].Dim()
	if p < 1 {
		return nil, ErrNoParameters
	}

	rhat := make([]float64, p)
	if m < 2 {
		for j := range rhat {
			rhat[j] = math.NaN()
		}

		return rhat, nil
	}

	series := make([]float64, n)
	means := make([]float64, m)
	vars := make([]float64, m)
	for j := 0; j < p; j++ {
		for i, c := range chains {
			for k := 0; k < n; k++ {
				series[k] = c[warmup+k].Values[j]
			}
			means[i] = stat.Mean(series, nil)
			vars[i] = stat.Variance(series, nil)
		}

		grand := stat.Mean(means, nil)
		between := 0.0
		for _, mu := range means {
			d := mu - grand
			between += d * d
		}
		between *= float64(n) / float64(m-1)

		within := stat.Mean(vars, nil)
		pooled := (float64(n-1)*within + between) / float64(n)

		rhat[j] = math.Sqrt(pooled / within)
	}

	return rhat, nil
}
