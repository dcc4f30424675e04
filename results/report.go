// File: report.go
// Role: construction of the immutable results bundle.
// Concurrency:
//   - Build deep-copies every input and accessors hand out copies, so a
//     Report is safe to read from any number of goroutines.

package results

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/probelab/mcstat/core"
	"github.com/probelab/mcstat/diagnostics"
	"github.com/probelab/mcstat/sampler"
)

// Report is the post-processing bundle for one completed sampling run.
// Construct with Build, FromSampler, or Decode; immutable afterwards.
type Report struct {
	opts   Options
	warmup int

	chains [][]core.ParameterSet
	output []core.ParameterSet
	rates  []float64
	meanLL []float64
	best   core.ParameterSet

	params []ParameterResults
}

// Build assembles a report from raw sampler products. All inputs are
// deep-copied; chains must be index-aligned (equal lengths) because the
// autocorrelation average is computed per lag across chains.
func Build(chains [][]core.ParameterSet, output []core.ParameterSet, rates, meanLL []float64, best core.ParameterSet, warmup int, opts *Options) (*Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if warmup < 0 {
		return nil, ErrNegativeWarmup
	}
	if len(output) == 0 {
		return nil, ErrNoSamples
	}
	if len(chains) == 0 {
		return nil, ErrNoChains
	}
	for _, c := range chains[1:] {
		if len(c) != len(chains[0]) {
			return nil, ErrLengthMismatch
		}
	}
	dim := output[0].Dim()
	if dim == 0 {
		return nil, core.ErrEmptyValues
	}
	for _, p := range output[1:] {
		if p.Dim() != dim {
			return nil, core.ErrDimensionMismatch
		}
	}

	r := &Report{
		opts:   o,
		warmup: warmup,
		output: core.CloneHistory(output),
		rates:  append([]float64(nil), rates...),
		meanLL: append([]float64(nil), meanLL...),
		best:   best.Clone(),
	}
	r.chains = make([][]core.ParameterSet, len(chains))
	for i, c := range chains {
		r.chains[i] = core.CloneHistory(c)
	}

	r.params = buildParameters(r.chains, r.output, warmup, &o)

	return r, nil
}

// FromSampler builds a report straight from a completed sampler run.
func FromSampler(s *sampler.Sampler, opts *Options) (*Report, error) {
	best, err := s.MAP()
	if err != nil {
		return nil, err
	}
	meanLL, err := s.MeanLogLikelihood()
	if err != nil {
		return nil, err
	}

	return Build(s.MarkovChains(), s.Output(), s.AcceptanceRates(), meanLL, best, s.WarmupIterations(), opts)
}

// buildParameters derives the per-parameter summaries. Deterministic: the
// same inputs always produce identical results, which is what lets Decode
// rebuild summaries instead of shipping them on the wire.
func buildParameters(chains [][]core.ParameterSet, output []core.ParameterSet, warmup int, o *Options) []ParameterResults {
	dim := output[0].Dim()
	params := make([]ParameterResults, dim)

	series := make([]float64, len(output))
	for j := 0; j < dim; j++ {
		for i, p := range output {
			series[i] = p.Values[j]
		}
		sorted := make([]float64, len(series))
		copy(sorted, series)
		sort.Float64s(sorted)

		params[j] = ParameterResults{
			Mean:            stat.Mean(series, nil),
			Median:          stat.Quantile(0.5, stat.Empirical, sorted, nil),
			StdDev:          stat.StdDev(series, nil),
			CredibleLow:     stat.Quantile(o.Alpha/2, stat.Empirical, sorted, nil),
			CredibleHigh:    stat.Quantile(1-o.Alpha/2, stat.Empirical, sorted, nil),
			Density:         kdeCurve(series, o.KDEPoints),
			Histogram:       histogram(series, o.Bins),
			Autocorrelation: averagedACF(chains, j, warmup, o.MaxLag),
		}
	}

	return params
}

// averagedACF computes the ACF per chain on its post-warm-up series and
// averages the per-chain values at each lag. Zero-variance chains are
// skipped; with no usable chain the result is nil.
func averagedACF(chains [][]core.ParameterSet, param, warmup, maxLag int) []float64 {
	var (
		sum  []float64
		used int
	)
	for _, c := range chains {
		if len(c) <= warmup {
			continue
		}
		series := make([]float64, len(c)-warmup)
		for k := range series {
			series[k] = c[warmup+k].Values[param]
		}
		acf, err := diagnostics.ACF(series, maxLag)
		if err != nil {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(acf))
		}
		if len(acf) != len(sum) {
			continue
		}
		for lag := range acf {
			sum[lag] += acf[lag]
		}
		used++
	}
	if used == 0 {
		return nil
	}
	for lag := range sum {
		sum[lag] /= float64(used)
	}

	return sum
}

// Options returns the summary configuration the report was built with.
func (r *Report) Options() Options { return r.opts }

// Warmup reports the warm-up length the chains were built with.
func (r *Report) Warmup() int { return r.warmup }

// NumParameters reports the output dimensionality.
func (r *Report) NumParameters() int { return len(r.params) }

// Parameter returns the summary for one parameter (copy).
func (r *Report) Parameter(i int) ParameterResults {
	p := r.params[i]
	out := p
	out.Density = Curve{
		X: append([]float64(nil), p.Density.X...),
		Y: append([]float64(nil), p.Density.Y...),
	}
	out.Histogram = Histogram{
		Edges:  append([]float64(nil), p.Histogram.Edges...),
		Counts: append([]float64(nil), p.Histogram.Counts...),
	}
	out.Autocorrelation = append([]float64(nil), p.Autocorrelation...)

	return out
}

// Chains returns deep copies of the nested per-chain histories.
func (r *Report) Chains() [][]core.ParameterSet {
	out := make([][]core.ParameterSet, len(r.chains))
	for i, c := range r.chains {
		out[i] = core.CloneHistory(c)
	}

	return out
}

// Output returns a deep copy of the thinned aggregated output.
func (r *Report) Output() []core.ParameterSet { return core.CloneHistory(r.output) }

// AcceptanceRates returns one rate per chain (copy).
func (r *Report) AcceptanceRates() []float64 { return append([]float64(nil), r.rates...) }

// MeanLogLikelihood returns the per-iteration mean fitness (copy).
func (r *Report) MeanLogLikelihood() []float64 { return append([]float64(nil), r.meanLL...) }

// MAP returns the maximum-a-posteriori parameter set (copy).
func (r *Report) MAP() core.ParameterSet { return r.best.Clone() }
