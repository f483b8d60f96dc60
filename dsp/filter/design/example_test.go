package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-strongmotion/dsp/filter/biquad"
	"github.com/cwbudde/algo-strongmotion/dsp/filter/design"
)

func ExampleButterworthHP() {
	coeffs := design.ButterworthHP(1, 4, 100)
	chain := biquad.NewChain(coeffs)

	fmt.Printf("sections=%d order=%d\n", len(coeffs), chain.Order())
	fmt.Printf("0.1 Hz: %.2f dB\n", chain.MagnitudeDB(0.1, 100))
	fmt.Printf("1 Hz:   %.2f dB\n", chain.MagnitudeDB(1, 100))
	fmt.Printf("10 Hz:  %.2f dB\n", chain.MagnitudeDB(10, 100))
	// Output:
	// sections=2 order=4
	// 0.1 Hz: -80.01 dB
	// 1 Hz:   -3.01 dB
	// 10 Hz:  -0.00 dB
}
