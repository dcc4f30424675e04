// File: ess.go
// Role: effective sample size of an autocorrelated series.

package diagnostics

// essCutoff is the autocorrelation below which summation truncates. The
// exact truncation rule (stop at the first lag under the cutoff) is part of
// the statistic's definition and must not change: reference outputs depend
// on it.
const essCutoff = 0.05

// EffectiveSampleSize estimates how many independent-equivalent samples the
// series represents: autocorrelations are summed over lags 1..N/2 until the
// first one drops below 0.05, then ESS = min(N / (1 + 2·Σρ), N).
//
// Errors: ErrTooFewSamples for N < 2, ErrZeroVariance for constant series.
func EffectiveSampleSize(series []float64) (float64, error) {
	n := len(series)
	if n < 2 {
		return 0, ErrTooFewSamples
	}

	acf, err := ACF(series, n/2)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for lag := 1; lag < len(acf); lag++ {
		if acf[lag] < essCutoff {
			break
		}
		sum += acf[lag]
	}

	ess := float64(n) / (1 + 2*sum)
	if ess > float64(n) {
		ess = float64(n)
	}

	return ess, nil
}
