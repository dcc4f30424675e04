// File: histogram.go
// Role: uniform-bucket histogram over sampler output.

package results

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// histogram buckets series into bins uniform buckets spanning its range.
// The top edge is padded by a relative epsilon so the maximum sample lands
// in the last bucket rather than on the open boundary.
func histogram(series []float64, bins int) Histogram {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	span := hi - lo
	if span == 0 {
		span = 1
	}
	hi += span * 1e-9

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	counts := stat.Histogram(nil, edges, sorted, nil)

	return Histogram{Edges: edges, Counts: counts}
}
