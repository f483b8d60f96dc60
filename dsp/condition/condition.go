package condition

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
	"github.com/cwbudde/algo-strongmotion/dsp/filter/biquad"
	"github.com/cwbudde/algo-strongmotion/dsp/filter/design"
)

// PadLen returns the odd-extension length used by the zero-phase filter of
// the given order: three times the transfer-function length.
func PadLen(order int) int {
	return 3 * (order + 1)
}

// BaselineSamples returns how many leading samples form the baseline
// window. It is floor(window*rate) bounded to [1, n].
func BaselineSamples(n int, sampleRate, window float64) int {
	count := int(math.Floor(window * sampleRate))
	if count > n {
		count = n
	}

	if count < 1 {
		count = 1
	}

	return count
}

// RemoveBaseline returns a copy of x with the mean of its first
// window*sampleRate samples subtracted from every sample.
func RemoveBaseline(x []float64, sampleRate, window float64) ([]float64, error) {
	if err := core.CheckSeries(x); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}

	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}

	if !(window > 0) || !core.IsFinite(window) {
		return nil, core.Invalidf("condition: baseline window %v must be positive", window)
	}

	out := core.Clone(x)
	core.SubtractInPlace(out, core.Mean(x[:BaselineSamples(len(x), sampleRate, window)]))

	return out, nil
}

// Highpass applies a zero-phase Butterworth high-pass of the given order and
// cutoff. The series must be longer than PadLen(order).
func Highpass(x []float64, sampleRate, cutoff float64, order int) ([]float64, error) {
	if err := core.CheckSeries(x); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}

	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}

	if order <= 0 {
		return nil, core.Invalidf("condition: filter order %d must be positive", order)
	}

	if !(cutoff > 0) || !core.IsFinite(cutoff) {
		return nil, core.Invalidf("condition: cutoff %v must be positive", cutoff)
	}

	if nyquist := sampleRate / 2; cutoff >= nyquist {
		return nil, core.Numericf("condition: cutoff %v Hz at or above Nyquist %v Hz", cutoff, nyquist)
	}

	coeffs := design.ButterworthHP(cutoff, order, sampleRate)
	if len(coeffs) == 0 || !biquad.NewChain(coeffs).Stable() {
		return nil, core.Numericf("condition: no stable high-pass for cutoff %v Hz order %d", cutoff, order)
	}

	y, err := biquad.FiltFilt(coeffs, x, PadLen(order))
	if err != nil {
		return nil, err
	}

	if err := core.CheckFinite("condition: filtered series", y); err != nil {
		return nil, err
	}

	return y, nil
}

// Apply runs baseline removal followed by the zero-phase high-pass.
func Apply(x []float64, sampleRate float64, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	corrected, err := RemoveBaseline(x, sampleRate, cfg.BaselineWindow)
	if err != nil {
		return nil, err
	}

	return Highpass(corrected, sampleRate, cfg.Cutoff, cfg.Order)
}
