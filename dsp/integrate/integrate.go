// Package integrate converts conditioned acceleration into velocity and
// displacement by division by iω in the frequency domain.
//
// The series is zero-padded before the transform so that the circular
// convolution implied by the DFT does not wrap the tail of the response onto
// its start. The DC bin is excluded from the division and forced to zero, and
// the residual mean of each truncated result is removed.
package integrate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
	"github.com/cwbudde/algo-strongmotion/dsp/fft"
)

// Method describes the integration scheme as recorded with the results.
const Method = "FFT with 4x padding"

const defaultPadFactor = 4

// Config holds the integration parameters.
type Config struct {
	// PadFactor is the ratio of transform length to series length.
	PadFactor int `yaml:"pad_factor"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a pad factor of 4.
func DefaultConfig() Config {
	return Config{PadFactor: defaultPadFactor}
}

// WithPadFactor sets the padding ratio.
func WithPadFactor(factor int) Option {
	return func(cfg *Config) { cfg.PadFactor = factor }
}

// NewConfig applies opts to the default configuration.
func NewConfig(opts ...Option) Config {
	return core.Apply(DefaultConfig(), opts...)
}

// Validate rejects a non-positive pad factor.
func (c Config) Validate() error {
	if c.PadFactor < 1 {
		return core.Invalidf("integrate: pad factor %d must be >= 1", c.PadFactor)
	}

	return nil
}

// MethodName returns the description of the scheme for cfg.
func (c Config) MethodName() string {
	if c.PadFactor == defaultPadFactor {
		return Method
	}

	return fmt.Sprintf("FFT with %dx padding", c.PadFactor)
}

// Result holds the integrated series, aligned sample for sample with the
// acceleration input.
type Result struct {
	Velocity     []float64
	Displacement []float64
}

// Integrate returns velocity and displacement for acc sampled at sampleRate.
// Units follow the input: gal yields cm/s and cm.
func Integrate(acc []float64, sampleRate float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	if err := core.CheckSeries(acc); err != nil {
		return Result{}, fmt.Errorf("integrate: %w", err)
	}

	if err := core.CheckSampleRate(sampleRate); err != nil {
		return Result{}, fmt.Errorf("integrate: %w", err)
	}

	n := len(acc)
	nPad := cfg.PadFactor * n

	plan, err := fft.NewPlan(nPad)
	if err != nil {
		return Result{}, fmt.Errorf("integrate: %w", err)
	}

	a, err := plan.Forward(acc)
	if err != nil {
		return Result{}, fmt.Errorf("integrate: %w", err)
	}

	freq := fft.Frequencies(nPad, 1/sampleRate)
	vel := make([]complex128, len(a))
	disp := make([]complex128, len(a))

	for k := 1; k < len(a); k++ {
		iw := complex(0, 2*math.Pi*freq[k])
		vel[k] = a[k] / iw
		disp[k] = vel[k] / iw
	}

	v, err := inverseTruncated(plan, vel, n)
	if err != nil {
		return Result{}, err
	}

	d, err := inverseTruncated(plan, disp, n)
	if err != nil {
		return Result{}, err
	}

	return Result{Velocity: v, Displacement: d}, nil
}

func inverseTruncated(plan *fft.Plan, coeff []complex128, n int) ([]float64, error) {
	full, err := plan.Inverse(coeff)
	if err != nil {
		return nil, fmt.Errorf("integrate: %w", err)
	}

	out := core.Clone(full[:n])
	core.SubtractInPlace(out, core.Mean(out))

	if err := core.CheckFinite("integrate: inverse transform", out); err != nil {
		return nil, err
	}

	return out, nil
}
