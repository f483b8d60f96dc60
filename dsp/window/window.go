// Package window provides the half-cosine tapers applied to record edges.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

// Slope controls which edge(s) of the window are tapered.
type Slope int

const (
	SlopeSymmetric Slope = iota
	SlopeLeft
	SlopeRight
)

// Option configures taper generation.
type Option func(*config)

type config struct {
	slope Slope
}

// WithSlope selects the tapered edge(s).
func WithSlope(s Slope) Option {
	return func(c *config) {
		c.slope = s
	}
}

// Tukey returns size coefficients that rise from zero along a half cosine
// over the first int(fraction·size) samples, stay at one, and fall back over
// the same number of samples at the end. fraction must lie in [0, 0.5].
func Tukey(size int, fraction float64, opts ...Option) ([]float64, error) {
	if size <= 0 {
		return nil, core.Invalidf("window: size must be > 0: %d", size)
	}

	if !(fraction >= 0 && fraction <= 0.5) {
		return nil, core.Invalidf("window: taper fraction %v outside [0, 0.5]", fraction)
	}

	cfg := config{slope: SlopeSymmetric}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = 1
	}

	ramp := int(fraction * float64(size))
	for i := range ramp {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(ramp)))
		if cfg.slope != SlopeRight {
			out[i] = w
		}
		if cfg.slope != SlopeLeft {
			out[size-1-i] = w
		}
	}

	return out, nil
}

// Apply multiplies buf in place by a Tukey taper of the given fraction.
func Apply(buf []float64, fraction float64, opts ...Option) error {
	coeffs, err := Tukey(len(buf), fraction, opts...)
	if err != nil {
		return err
	}

	return ApplyCoefficientsInPlace(buf, coeffs)
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if err := core.CheckAligned(samples, coeffs); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
