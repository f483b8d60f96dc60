package condition

import (
	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

const (
	defaultBaselineWindow = 1.0
	defaultCutoff         = 0.1
	defaultOrder          = 4
)

// Config holds the conditioning parameters.
type Config struct {
	// BaselineWindow is the leading window in seconds whose mean is removed.
	BaselineWindow float64 `yaml:"baseline_window_sec"`
	// Cutoff is the high-pass corner frequency in Hz.
	Cutoff float64 `yaml:"highpass_cutoff_hz"`
	// Order is the Butterworth filter order of one pass.
	Order int `yaml:"highpass_order"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 1 s baseline window and a 4th-order 0.1 Hz high-pass.
func DefaultConfig() Config {
	return Config{
		BaselineWindow: defaultBaselineWindow,
		Cutoff:         defaultCutoff,
		Order:          defaultOrder,
	}
}

// WithBaselineWindow sets the baseline window in seconds.
func WithBaselineWindow(seconds float64) Option {
	return func(cfg *Config) { cfg.BaselineWindow = seconds }
}

// WithHighpass sets the high-pass cutoff (Hz) and order.
func WithHighpass(cutoff float64, order int) Option {
	return func(cfg *Config) {
		cfg.Cutoff = cutoff
		cfg.Order = order
	}
}

// NewConfig applies opts to the default configuration.
func NewConfig(opts ...Option) Config {
	return core.Apply(DefaultConfig(), opts...)
}

// Validate reports parameters that can never produce a result.
func (c Config) Validate() error {
	if !(c.BaselineWindow > 0) || !core.IsFinite(c.BaselineWindow) {
		return core.Invalidf("condition: baseline window %v must be positive", c.BaselineWindow)
	}

	if !(c.Cutoff > 0) || !core.IsFinite(c.Cutoff) {
		return core.Invalidf("condition: cutoff %v must be positive", c.Cutoff)
	}

	if c.Order <= 0 {
		return core.Invalidf("condition: filter order %d must be positive", c.Order)
	}

	return nil
}
