package core

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckSampleRate rejects non-positive or non-finite sampling rates.
func CheckSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || !IsFinite(sampleRate) {
		return Invalidf("sample rate must be > 0: %v", sampleRate)
	}
	return nil
}

// CheckSeries rejects empty series.
func CheckSeries(x []float64) error {
	if len(x) == 0 {
		return Invalidf("series is empty")
	}
	return nil
}

// CheckAligned rejects an empty set of series, any empty series, and series
// whose lengths differ from the first one.
func CheckAligned(series ...[]float64) error {
	if len(series) == 0 {
		return Invalidf("no series given")
	}
	n := len(series[0])
	if n == 0 {
		return Invalidf("series is empty")
	}
	for i, s := range series[1:] {
		if len(s) != n {
			return Invalidf("series %d length %d != %d", i+1, len(s), n)
		}
	}
	return nil
}

// CheckFinite returns ErrNumericFailure if any value is NaN or Inf.
func CheckFinite(what string, x []float64) error {
	for i, v := range x {
		if !IsFinite(v) {
			return Numericf("%s: non-finite value %v at index %d", what, v, i)
		}
	}
	return nil
}
