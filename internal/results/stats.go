package results

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean, 0 for an empty slice. NaN samples
// propagate into the result.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	return stat.Mean(xs, nil)
}

// Variance returns the sample variance (n-1 denominator), 0 when fewer than
// two samples exist.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0.0
	}
	return stat.Variance(xs, nil)
}

// Stdev returns the sample standard deviation.
func Stdev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Geomean returns the geometric mean of the strictly positive values, 0
// when there are none.
func Geomean(xs []float64) float64 {
	var pos []float64
	for _, x := range xs {
		if x > 0 {
			pos = append(pos, x)
		}
	}
	if len(pos) == 0 {
		return 0.0
	}
	return stat.GeometricMean(pos, nil)
}
