package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Sum(x) / float64(len(x))
}

// SubtractInPlace subtracts c from every element of x.
func SubtractInPlace(x []float64, c float64) {
	floats.AddConst(-c, x)
}

// ArgMaxAbs returns the index of the largest |x[i]|. The scan runs from
// index 0 upward and only moves on a strictly larger magnitude, so ties
// resolve to the lowest index. Returns -1 for an empty slice.
func ArgMaxAbs(x []float64) int {
	idx := -1
	best := -1.0
	for i, v := range x {
		if a := math.Abs(v); a > best {
			best = a
			idx = i
		}
	}
	return idx
}

// MaxAbs returns max|x[i]|, or 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	i := ArgMaxAbs(x)
	if i < 0 {
		return 0
	}
	return math.Abs(x[i])
}

// SRSS returns sqrt(a² + b²).
func SRSS(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}
