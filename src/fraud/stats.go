package fraud

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// meanStd returns the mean and the population (biased) standard deviation.
// Values are scaled by a power of two around the largest magnitude so the
// running sum cannot overflow; the scaling is exact.
func meanStd(x []float64) (mean, std float64) {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}
	_, exp := math.Frexp(peak)

	scaled := make([]float64, len(x))
	for i, v := range x {
		scaled[i] = math.Ldexp(v, -exp)
	}
	mean, std = stat.PopMeanStdDev(scaled, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return math.Ldexp(mean, exp), math.Ldexp(std, exp)
}

// percentile returns the p-th percentile (0..100) of x using linear
// interpolation between closest ranks, rank = (n-1)*p/100.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := float64(n-1) * p / 100
	lo := int(math.Floor(rank))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func quartiles(x []float64) (q1, q3 float64) {
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	return percentile(sorted, 25), percentile(sorted, 75)
}
