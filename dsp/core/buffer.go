package core

// Clone returns a copy of src.
func Clone(src []float64) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// ZeroPad returns a new slice of length n holding src followed by zeros.
// If src is longer than n it is truncated.
func ZeroPad(src []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	copy(out, src)
	return out
}
