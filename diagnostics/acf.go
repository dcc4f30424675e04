// File: acf.go
// Role: autocorrelation function of a sample series.

package diagnostics

// ACF returns the autocorrelation of series at lags 0..maxLag: mean-centered
// lagged products normalized by the lag-0 sum of squares, so acf[0] == 1.
// maxLag is clamped to len(series)-1.
//
// Errors: ErrEmptySeries, ErrBadLag, ErrZeroVariance (constant series).
//
// Complexity: O(N·maxLag).
func ACF(series []float64, maxLag int) ([]float64, error) {
	n := len(series)
	if n == 0 {
		return nil, ErrEmptySeries
	}
	if maxLag < 0 {
		return nil, ErrBadLag
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	ss := 0.0
	for _, v := range series {
		d := v - mean
		ss += d * d
	}
	if ss == 0 {
		return nil, ErrZeroVariance
	}

	acf := make([]float64, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		sum := 0.0
		for i := lag; i < n; i++ {
			sum += (series[i] - mean) * (series[i-lag] - mean)
		}
		acf[lag] = sum / ss
	}

	return acf, nil
}
