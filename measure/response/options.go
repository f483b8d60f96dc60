package response

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

const (
	defaultDamping     = 0.05
	defaultPeriodMin   = 0.02
	defaultPeriodMax   = 10.0
	defaultPeriodCount = 100
)

// Config holds oscillator damping and the period grid.
type Config struct {
	// Damping is the ratio of critical damping.
	Damping float64 `yaml:"damping"`
	// PeriodMin, PeriodMax and PeriodCount describe a log-spaced grid
	// including both ends.
	PeriodMin   float64 `yaml:"period_min_sec"`
	PeriodMax   float64 `yaml:"period_max_sec"`
	PeriodCount int     `yaml:"period_count"`
	// Periods overrides the log-spaced grid when not empty. It may hold 0.
	Periods []float64 `yaml:"periods,omitempty"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 5% damping over 100 periods from 0.02 s to 10 s.
func DefaultConfig() Config {
	return Config{
		Damping:     defaultDamping,
		PeriodMin:   defaultPeriodMin,
		PeriodMax:   defaultPeriodMax,
		PeriodCount: defaultPeriodCount,
	}
}

// WithDamping sets the damping ratio.
func WithDamping(h float64) Option {
	return func(cfg *Config) { cfg.Damping = h }
}

// WithPeriodRange sets a log-spaced grid of count periods over [minT, maxT].
func WithPeriodRange(minT, maxT float64, count int) Option {
	return func(cfg *Config) {
		cfg.PeriodMin = minT
		cfg.PeriodMax = maxT
		cfg.PeriodCount = count
		cfg.Periods = nil
	}
}

// WithPeriods sets an explicit period grid in seconds.
func WithPeriods(periods ...float64) Option {
	return func(cfg *Config) {
		cfg.Periods = append([]float64(nil), periods...)
	}
}

// NewConfig applies opts to the default configuration.
func NewConfig(opts ...Option) Config {
	return core.Apply(DefaultConfig(), opts...)
}

// Validate rejects non-positive damping and malformed period grids.
func (c Config) Validate() error {
	if err := checkDamping(c.Damping); err != nil {
		return err
	}

	if len(c.Periods) > 0 {
		for i, p := range c.Periods {
			if err := checkPeriod(p); err != nil {
				return fmt.Errorf("period %d: %w", i, err)
			}
		}

		return nil
	}

	if !(c.PeriodMin > 0) || !core.IsFinite(c.PeriodMin) {
		return core.Invalidf("response: minimum period %v must be positive", c.PeriodMin)
	}

	if !(c.PeriodMax >= c.PeriodMin) || !core.IsFinite(c.PeriodMax) {
		return core.Invalidf("response: maximum period %v below minimum %v", c.PeriodMax, c.PeriodMin)
	}

	if c.PeriodCount < 1 {
		return core.Invalidf("response: period count %d must be >= 1", c.PeriodCount)
	}

	return nil
}

// Grid returns the periods the configuration evaluates.
func (c Config) Grid() ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if len(c.Periods) > 0 {
		return append([]float64(nil), c.Periods...), nil
	}

	return LogPeriods(c.PeriodMin, c.PeriodMax, c.PeriodCount)
}

// LogPeriods returns count log-spaced periods from minT to maxT inclusive.
// A count of one yields [minT].
func LogPeriods(minT, maxT float64, count int) ([]float64, error) {
	if !(minT > 0) || !(maxT >= minT) || !core.IsFinite(maxT) {
		return nil, core.Invalidf("response: period range [%v, %v] invalid", minT, maxT)
	}

	switch {
	case count < 1:
		return nil, core.Invalidf("response: period count %d must be >= 1", count)
	case count == 1:
		return []float64{minT}, nil
	}

	out := make([]float64, count)
	floats.LogSpan(out, minT, maxT)
	out[0], out[count-1] = minT, maxT

	return out, nil
}

func checkDamping(h float64) error {
	if !(h > 0) || !core.IsFinite(h) {
		return core.Invalidf("response: damping %v must be positive", h)
	}

	return nil
}

func checkPeriod(p float64) error {
	if !(p >= 0) || !core.IsFinite(p) {
		return core.Invalidf("response: period %v must be >= 0", p)
	}

	return nil
}
