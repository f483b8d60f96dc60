// Package process derives every engineering quantity of one station record.
//
// Run is a pure function of the record and the configuration: acceleration
// peaks and Fourier spectra come from the raw series, velocity and
// displacement from the conditioned series, and response spectra again from
// the raw series.
package process

import (
	"fmt"

	"github.com/cwbudde/algo-strongmotion/dsp/condition"
	"github.com/cwbudde/algo-strongmotion/dsp/integrate"
	"github.com/cwbudde/algo-strongmotion/dsp/spectrum"
	"github.com/cwbudde/algo-strongmotion/measure/peak"
	"github.com/cwbudde/algo-strongmotion/measure/response"
	"github.com/cwbudde/algo-strongmotion/motion"
)

// Peaks holds the peak sets of the three derived quantities.
type Peaks struct {
	Acceleration peak.Set
	Velocity     peak.Set
	Displacement peak.Set
}

// Result holds everything derived from one record.
type Result struct {
	Record       motion.Record
	Velocity     motion.Triple // cm/s
	Displacement motion.Triple // cm
	Fourier      [3]spectrum.Fourier
	Response     [3]response.Spectrum
	Horizontal   response.Spectrum
	Peaks        Peaks
	Config       Config
}

// IntegrationParams returns the parameters recorded with the results.
func (r Result) IntegrationParams() IntegrationParams {
	return r.Config.IntegrationParams()
}

// Run processes rec with cfg.
func Run(rec motion.Record, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Record: rec, Config: cfg}

	var err error

	acc := rec.Accel
	if res.Peaks.Acceleration, err = peak.Compute(acc[motion.NS], acc[motion.EW], acc[motion.UD]); err != nil {
		return Result{}, fmt.Errorf("process: acceleration peaks: %w", err)
	}

	for _, c := range motion.Components {
		if err := res.derive(c, cfg); err != nil {
			return Result{}, fmt.Errorf("process: %v: %w", c, err)
		}
	}

	if res.Peaks.Velocity, err = peakSet(res.Velocity); err != nil {
		return Result{}, fmt.Errorf("process: velocity peaks: %w", err)
	}

	if res.Peaks.Displacement, err = peakSet(res.Displacement); err != nil {
		return Result{}, fmt.Errorf("process: displacement peaks: %w", err)
	}

	if res.Horizontal, err = response.Horizontal(res.Response[motion.NS], res.Response[motion.EW]); err != nil {
		return Result{}, fmt.Errorf("process: horizontal response: %w", err)
	}

	return res, nil
}

func (r *Result) derive(c motion.Component, cfg Config) error {
	acc := r.Record.Accel.Of(c)
	rate := r.Record.SampleRate

	fourier, err := spectrum.FourierAmplitude(acc, rate)
	if err != nil {
		return err
	}

	conditioned, err := condition.Apply(acc, rate, cfg.Condition)
	if err != nil {
		return err
	}

	motionOut, err := integrate.Integrate(conditioned, rate, cfg.Integrate)
	if err != nil {
		return err
	}

	spec, err := response.Compute(acc, rate, cfg.Response)
	if err != nil {
		return err
	}

	r.Fourier[c] = fourier
	r.Velocity[c] = motionOut.Velocity
	r.Displacement[c] = motionOut.Displacement
	r.Response[c] = spec

	return nil
}

func peakSet(t motion.Triple) (peak.Set, error) {
	return peak.Compute(t[motion.NS], t[motion.EW], t[motion.UD])
}
