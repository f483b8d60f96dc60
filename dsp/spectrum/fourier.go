package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
	"github.com/cwbudde/algo-strongmotion/dsp/fft"
)

// Fourier is a single-sided amplitude spectrum on the grid k/(n·dt),
// k = 0..n/2.
type Fourier struct {
	Frequency []float64 // Hz, starts at 0, strictly increasing
	Amplitude []float64 // input unit × s
}

// Len returns the number of bins.
func (f Fourier) Len() int { return len(f.Frequency) }

// Peak returns the index of the largest amplitude, or -1 for an empty
// spectrum.
func (f Fourier) Peak() int {
	return core.ArgMaxAbs(f.Amplitude)
}

// FourierAmplitude computes the amplitude spectrum of x sampled at
// sampleRate Hz. The transform length equals len(x); no window or padding
// is applied.
func FourierAmplitude(x []float64, sampleRate float64) (Fourier, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return Fourier{}, fmt.Errorf("spectrum: %w", err)
	}
	if err := core.CheckSeries(x); err != nil {
		return Fourier{}, fmt.Errorf("spectrum: %w", err)
	}

	n := len(x)
	dt := 1 / sampleRate

	plan, err := fft.NewPlan(n)
	if err != nil {
		return Fourier{}, fmt.Errorf("spectrum: %w", err)
	}
	bins, err := plan.Forward(x)
	if err != nil {
		return Fourier{}, fmt.Errorf("spectrum: %w", err)
	}

	amp := Magnitude(bins)
	scale := 2 * dt
	for k := range amp {
		amp[k] *= scale
	}

	// Only interior bins carry the single-sided factor of two.
	amp[0] /= 2
	if n%2 == 0 && len(amp) > 1 {
		amp[len(amp)-1] /= 2
	}

	return Fourier{
		Frequency: fft.Frequencies(n, dt),
		Amplitude: amp,
	}, nil
}
