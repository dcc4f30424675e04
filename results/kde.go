// File: kde.go
// Role: Gaussian kernel density estimation with normal-reference bandwidth.

package results

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// invSqrt2Pi = 1/√(2π), the Gaussian kernel normalization.
const invSqrt2Pi = 0.3989422804014327

// silvermanBandwidth is the rule-of-thumb normal-reference bandwidth:
// h = 0.9·min(σ, IQR/1.34)·n^(−1/5). Degenerate samples (zero spread)
// fall back to a unit bandwidth so the curve stays finite.
func silvermanBandwidth(sorted []float64) float64 {
	n := float64(len(sorted))
	sigma := stat.StdDev(sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)

	spread := sigma
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	if spread <= 0 || math.IsNaN(spread) {
		return 1
	}

	return 0.9 * spread * math.Pow(n, -0.2)
}

// kdeCurve evaluates the Gaussian KDE of series on points equally spaced
// over [min−3h, max+3h].
//
// Complexity: O(N·points).
func kdeCurve(series []float64, points int) Curve {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	h := silvermanBandwidth(sorted)
	lo := sorted[0] - 3*h
	hi := sorted[len(sorted)-1] + 3*h
	step := (hi - lo) / float64(points-1)

	curve := Curve{
		X: make([]float64, points),
		Y: make([]float64, points),
	}
	norm := invSqrt2Pi / (float64(len(series)) * h)
	for i := 0; i < points; i++ {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range series {
			z := (x - v) / h
			density += math.Exp(-0.5 * z * z)
		}
		curve.X[i] = x
		curve.Y[i] = density * norm
	}

	return curve
}
