package diagnostics_test

import (
	"testing"

	"github.com/probelab/mcstat/core"
	"github.com/probelab/mcstat/diagnostics"
)

// BenchmarkEffectiveSampleSize measures the ESS heuristic on a 10k series.
func BenchmarkEffectiveSampleSize(b *testing.B) {
	rng := core.NewStream(1, 0)
	series := make([]float64, 10_000)
	x := 0.0
	for i := range series {
		x = 0.5*x + rng.NormFloat64()
		series[i] = x
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := diagnostics.EffectiveSampleSize(series); err != nil {
			b.Fatal(err)
		}
	}
}
