// Package motion holds the three-component ground-motion record of one
// station.
package motion

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

// Component is a sensor axis.
type Component int

// Sensor axes.
const (
	NS Component = iota
	EW
	UD
)

// Components lists the axes in table column order.
var Components = [...]Component{NS, EW, UD}

// String returns the axis label used in tables and metadata.
func (c Component) String() string {
	switch c {
	case NS:
		return "NS"
	case EW:
		return "EW"
	case UD:
		return "UD"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// ParseComponent maps an axis label to a Component.
func ParseComponent(s string) (Component, error) {
	for _, c := range Components {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, core.Invalidf("motion: unknown component %q", s)
}

// Triple holds one aligned series per axis.
type Triple [3][]float64

// Of returns the series of axis c.
func (t Triple) Of(c Component) []float64 { return t[c] }

// Len returns the common length of the series.
func (t Triple) Len() int { return len(t[NS]) }

// Record is a trimmed acceleration record.
type Record struct {
	Station    string
	SampleRate float64   // Hz
	Start      time.Time // time of the first sample
	Accel      Triple    // gal
}

// New copies the three series and trims them to the shortest length.
// It fails when the rate is not positive or any series is empty.
func New(station string, sampleRate float64, start time.Time, ns, ew, ud []float64) (Record, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return Record{}, fmt.Errorf("motion: station %q: %w", station, err)
	}

	n := min(len(ns), len(ew), len(ud))
	if n == 0 {
		return Record{}, core.Invalidf("motion: station %q: empty component (NS %d, EW %d, UD %d samples)",
			station, len(ns), len(ew), len(ud))
	}

	return Record{
		Station:    station,
		SampleRate: sampleRate,
		Start:      start,
		Accel: Triple{
			core.Clone(ns[:n]),
			core.Clone(ew[:n]),
			core.Clone(ud[:n]),
		},
	}, nil
}

// Len returns the number of samples per component.
func (r Record) Len() int { return r.Accel.Len() }

// Interval returns the sample interval.
func (r Record) Interval() time.Duration {
	return seconds(1 / r.SampleRate)
}

// Duration returns the time span covered by the samples, n/rate.
func (r Record) Duration() time.Duration {
	return seconds(float64(r.Len()) / r.SampleRate)
}

// End returns the time of the last sample.
func (r Record) End() time.Time {
	if r.Len() == 0 {
		return r.Start
	}

	return r.At(r.Len() - 1)
}

// At returns the time of sample i, start + i/rate.
func (r Record) At(i int) time.Time {
	return r.Start.Add(seconds(float64(i) / r.SampleRate))
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Timestamps returns the time of every sample.
func (r Record) Timestamps() []time.Time {
	out := make([]time.Time, r.Len())
	for i := range out {
		out[i] = r.At(i)
	}

	return out
}
