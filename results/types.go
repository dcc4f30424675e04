// File: types.go
// Role: report options, documented defaults, result record types.

package results

// Defaults - single source of truth for report construction.
const (
	// DefaultBins is the histogram bucket count.
	DefaultBins = 20

	// DefaultKDEPoints is the number of points on the density curve.
	DefaultKDEPoints = 128

	// DefaultAlpha is the credible-interval tail mass: 0.05 ⇒ 95% interval.
	DefaultAlpha = 0.05

	// DefaultMaxLag bounds the averaged autocorrelation function.
	DefaultMaxLag = 50
)

// Options configures report construction.
//
// Fields:
//   - Bins      — histogram buckets (≥ 1).
//   - KDEPoints — density curve resolution (≥ 2).
//   - Alpha     — credible-interval tail mass in (0, 1).
//   - MaxLag    — autocorrelation lags (≥ 1); clamped to the chain length.
type Options struct {
	Bins      int
	KDEPoints int
	Alpha     float64
	MaxLag    int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Bins:      DefaultBins,
		KDEPoints: DefaultKDEPoints,
		Alpha:     DefaultAlpha,
		MaxLag:    DefaultMaxLag,
	}
}

// validate fails fast on nonsensical report options.
func (o *Options) validate() error {
	if o.Bins < 1 {
		return ErrBadBins
	}
	if o.KDEPoints < 2 {
		return ErrBadKDEPoints
	}
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return ErrBadAlpha
	}
	if o.MaxLag < 1 {
		return ErrBadLag
	}

	return nil
}

// Curve is a sampled function: Y[i] = f(X[i]). Used for density estimates.
type Curve struct {
	X []float64
	Y []float64
}

// Histogram holds uniform bucket edges (len Bins+1) and per-bucket counts
// (len Bins).
type Histogram struct {
	Edges  []float64
	Counts []float64
}

// ParameterResults is the per-parameter summary built from sampler output.
// Immutable after construction.
type ParameterResults struct {
	// Mean, Median and StdDev summarize the thinned post-warm-up samples.
	Mean   float64
	Median float64
	StdDev float64

	// CredibleLow and CredibleHigh bound the central (1−Alpha) interval.
	CredibleLow  float64
	CredibleHigh float64

	// Density is the Gaussian kernel density estimate.
	Density Curve

	// Histogram is the bucketed view of the same samples.
	Histogram Histogram

	// Autocorrelation holds the chain-averaged ACF at lags 0..MaxLag.
	Autocorrelation []float64
}
