package biquad

import (
	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

// OddExtend returns x with padLen samples of odd (point-symmetric)
// extension on both ends:
//
//	left[i]  = 2*x[0]   - x[padLen-i]
//	right[i] = 2*x[n-1] - x[n-2-i]
//
// len(x) must exceed padLen.
func OddExtend(x []float64, padLen int) ([]float64, error) {
	n := len(x)
	if padLen < 0 {
		return nil, core.Invalidf("biquad: negative pad length %d", padLen)
	}
	if n <= padLen {
		return nil, core.Invalidf("biquad: signal length %d must exceed pad length %d", n, padLen)
	}

	ext := make([]float64, n+2*padLen)
	for i := range padLen {
		ext[i] = 2*x[0] - x[padLen-i]
	}

	copy(ext[padLen:], x)

	for i := range padLen {
		ext[padLen+n+i] = 2*x[n-1] - x[n-2-i]
	}

	return ext, nil
}

// FiltFilt applies the cascade forward and then backward, giving a
// zero-phase result with squared magnitude response. The signal is
// odd-extended by padLen samples on each side and each pass starts from the
// steady state matching its first input sample. x is not modified.
func FiltFilt(coeffs []Coefficients, x []float64, padLen int) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, core.Invalidf("biquad: no sections")
	}

	ext, err := OddExtend(x, padLen)
	if err != nil {
		return nil, err
	}

	chain := NewChain(coeffs)

	chain.SetSteadyState(ext[0])
	chain.ProcessBlock(ext)

	reverse(ext)
	chain.SetSteadyState(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)

	out := make([]float64, len(x))
	copy(out, ext[padLen:padLen+len(x)])

	return out, nil
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
