package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-strongmotion/dsp/spectrum"
)

func ExampleFourierAmplitude() {
	// A constant 2 gal over 1 s at 10 Hz.
	x := []float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	f, _ := spectrum.FourierAmplitude(x, 10)
	fmt.Printf("bins=%d f0=%.1f A0=%.3f fN=%.1f\n", f.Len(), f.Frequency[0], f.Amplitude[0], f.Frequency[f.Len()-1])
	// Output:
	// bins=6 f0=0.0 A0=2.000 fN=5.0
}
