// Package signal generates deterministic synthetic accelerograms.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
	"github.com/cwbudde/algo-strongmotion/dsp/window"
)

// Generator creates deterministic signals at a fixed sampling rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sampling rate in Hz. Default is 100.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) { g.sampleRate = sampleRate }
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.seed = seed }
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 100, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sampling rate.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed updates the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

func (g *Generator) check(what string, samples int) error {
	if samples <= 0 {
		return core.Invalidf("signal: %s samples must be > 0: %d", what, samples)
	}

	if err := core.CheckSampleRate(g.sampleRate); err != nil {
		return fmt.Errorf("signal: %s: %w", what, err)
	}

	return nil
}

// Sine generates amplitude·sin(2π·freqHz·t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// SineBurst generates a sine whose first and last taper fraction of the
// record rise from and fall to zero along a half cosine (Tukey window).
// taper must lie in [0, 0.5].
func (g *Generator) SineBurst(freqHz, amplitude float64, samples int, taper float64) ([]float64, error) {
	if taper < 0 || taper > 0.5 || math.IsNaN(taper) {
		return nil, core.Invalidf("signal: taper fraction %v outside [0, 0.5]", taper)
	}

	out, err := g.Sine(freqHz, amplitude, samples)
	if err != nil {
		return nil, err
	}

	if err := window.Apply(out, taper); err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}

	return out, nil
}

// Impulse generates a zero series with value at index pos.
func (g *Generator) Impulse(value float64, pos, samples int) ([]float64, error) {
	if err := g.check("impulse", samples); err != nil {
		return nil, err
	}

	if pos < 0 || pos >= samples {
		return nil, core.Invalidf("signal: impulse position %d outside [0, %d)", pos, samples)
	}

	out := make([]float64, samples)
	out[pos] = value

	return out, nil
}

// Constant generates samples copies of value.
func (g *Generator) Constant(value float64, samples int) ([]float64, error) {
	if err := g.check("constant", samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.check("noise", samples); err != nil {
		return nil, err
	}

	if amplitude < 0 {
		return nil, core.Invalidf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, core.Invalidf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	if err := core.CheckSeries(data); err != nil {
		return nil, fmt.Errorf("signal: normalize: %w", err)
	}

	out := make([]float64, len(data))

	maxAbs := core.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
