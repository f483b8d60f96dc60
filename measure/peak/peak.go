// Package peak reduces three-component motion to peak values.
//
// Component peaks keep their sign: they are the sample at the index of the
// largest magnitude, the lowest index winning ties. Horizontal and total
// peaks are the largest vector magnitudes over aligned samples and are never
// negative.
package peak

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

// Set holds the peaks of one derived quantity. The YAML keys match the
// station metadata document.
type Set struct {
	NS    float64 `yaml:"NS"`
	EW    float64 `yaml:"EW"`
	UD    float64 `yaml:"UD"`
	H     float64 `yaml:"H"`
	Total float64 `yaml:"total"`
}

// Signed returns the sample of x with the largest magnitude, sign kept.
func Signed(x []float64) (float64, error) {
	if err := core.CheckSeries(x); err != nil {
		return 0, fmt.Errorf("peak: %w", err)
	}

	return x[core.ArgMaxAbs(x)], nil
}

// Horizontal returns max_i sqrt(ns[i]² + ew[i]²).
func Horizontal(ns, ew []float64) (float64, error) {
	if err := core.CheckAligned(ns, ew); err != nil {
		return 0, fmt.Errorf("peak: %w", err)
	}

	best := 0.0
	for i := range ns {
		best = math.Max(best, math.Hypot(ns[i], ew[i]))
	}

	return best, nil
}

// Total returns max_i sqrt(ns[i]² + ew[i]² + ud[i]²).
func Total(ns, ew, ud []float64) (float64, error) {
	if err := core.CheckAligned(ns, ew, ud); err != nil {
		return 0, fmt.Errorf("peak: %w", err)
	}

	best := 0.0
	for i := range ns {
		best = math.Max(best, math.Sqrt(ns[i]*ns[i]+ew[i]*ew[i]+ud[i]*ud[i]))
	}

	return best, nil
}

// Compute returns all five peaks of an aligned component triple.
func Compute(ns, ew, ud []float64) (Set, error) {
	if err := core.CheckAligned(ns, ew, ud); err != nil {
		return Set{}, fmt.Errorf("peak: %w", err)
	}

	h, err := Horizontal(ns, ew)
	if err != nil {
		return Set{}, err
	}

	total, err := Total(ns, ew, ud)
	if err != nil {
		return Set{}, err
	}

	return Set{
		NS:    ns[core.ArgMaxAbs(ns)],
		EW:    ew[core.ArgMaxAbs(ew)],
		UD:    ud[core.ArgMaxAbs(ud)],
		H:     h,
		Total: total,
	}, nil
}

// Round returns s with every value rounded half away from zero to the given
// number of decimal places.
func (s Set) Round(places int32) Set {
	return Set{
		NS:    round(s.NS, places),
		EW:    round(s.EW, places),
		UD:    round(s.UD, places),
		H:     round(s.H, places),
		Total: round(s.Total, places),
	}
}

func round(v float64, places int32) float64 {
	if !core.IsFinite(v) {
		return v
	}

	f, _ := decimal.NewFromFloat(v).Round(places).Float64()

	return f
}
