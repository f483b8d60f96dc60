package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
	"github.com/cwbudde/algo-strongmotion/dsp/fft"
)

// Point holds the peak responses of one oscillator.
type Point struct {
	SD  float64 // relative displacement, input unit × s²
	SV  float64 // relative velocity, input unit × s
	SA  float64 // absolute acceleration, input unit
	PSV float64 // pseudo-velocity (2π/T)·SD
}

// Metric selects one response quantity.
type Metric int

// Response quantities.
const (
	SD Metric = iota
	SV
	SA
	PSV
)

// String returns the conventional abbreviation.
func (m Metric) String() string {
	switch m {
	case SD:
		return "SD"
	case SV:
		return "SV"
	case SA:
		return "SA"
	case PSV:
		return "pSV"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps an abbreviation (SD, SV, SA, pSV) to a Metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range []Metric{SD, SV, SA, PSV} {
		if s == m.String() {
			return m, nil
		}
	}

	return 0, core.Invalidf("response: unknown metric %q", s)
}

// Of returns the value of metric m.
func (p Point) Of(m Metric) float64 {
	switch m {
	case SD:
		return p.SD
	case SV:
		return p.SV
	case SA:
		return p.SA
	default:
		return p.PSV
	}
}

// Spectrum is a response spectrum: one Point per period.
type Spectrum struct {
	Periods []float64
	Values  []Point
}

// Len returns the number of periods.
func (s Spectrum) Len() int { return len(s.Periods) }

// Metric returns the values of m across the period grid.
func (s Spectrum) Metric(m Metric) []float64 {
	out := make([]float64, len(s.Values))
	for i, p := range s.Values {
		out[i] = p.Of(m)
	}

	return out
}

// input is the padded transform of one record, shared by every period.
type input struct {
	n       int
	plan    *fft.Plan
	spec    []complex128
	omega   []float64
	peakAbs float64
}

func prepare(acc []float64, sampleRate float64) (*input, error) {
	if err := core.CheckSeries(acc); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	n := len(acc)
	nfft := 2 * fft.NextPow2(n)

	plan, err := fft.NewPlan(nfft)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	spec, err := plan.Forward(acc)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	freq := fft.Frequencies(nfft, 1/sampleRate)
	omega := make([]float64, len(freq))
	for k, f := range freq {
		omega[k] = 2 * math.Pi * f
	}

	return &input{
		n:       n,
		plan:    plan,
		spec:    spec,
		omega:   omega,
		peakAbs: core.MaxAbs(acc),
	}, nil
}

func (in *input) oscillator(period, damping float64) (Point, error) {
	if period == 0 {
		return Point{SA: in.peakAbs}, nil
	}

	wn := 2 * math.Pi / period
	wn2 := wn * wn

	disp := make([]complex128, len(in.spec))
	vel := make([]complex128, len(in.spec))
	abs := make([]complex128, len(in.spec))

	for k, a := range in.spec {
		w := in.omega[k]
		h := -1 / complex(wn2-w*w, 2*damping*wn*w)
		d := a * h
		disp[k] = d
		vel[k] = complex(0, w) * d
		abs[k] = a - complex(w*w, 0)*d
	}

	sd, err := in.peak(disp)
	if err != nil {
		return Point{}, err
	}

	sv, err := in.peak(vel)
	if err != nil {
		return Point{}, err
	}

	sa, err := in.peak(abs)
	if err != nil {
		return Point{}, err
	}

	return Point{SD: sd, SV: sv, SA: sa, PSV: wn * sd}, nil
}

func (in *input) peak(coeff []complex128) (float64, error) {
	x, err := in.plan.Inverse(coeff)
	if err != nil {
		return 0, fmt.Errorf("response: %w", err)
	}

	x = x[:in.n]
	if err := core.CheckFinite("response: oscillator history", x); err != nil {
		return 0, err
	}

	return core.MaxAbs(x), nil
}

// Oscillator returns the peak responses of one oscillator with natural
// period (s) and damping ratio. A period of zero is a rigid oscillator: SD,
// SV and pSV are 0 and SA is the peak input magnitude.
func Oscillator(acc []float64, sampleRate, period, damping float64) (Point, error) {
	if err := checkPeriod(period); err != nil {
		return Point{}, err
	}

	if err := checkDamping(damping); err != nil {
		return Point{}, err
	}

	in, err := prepare(acc, sampleRate)
	if err != nil {
		return Point{}, err
	}

	return in.oscillator(period, damping)
}

// Compute evaluates every period of the configured grid for one component.
// The input transform is computed once and reused.
func Compute(acc []float64, sampleRate float64, cfg Config) (Spectrum, error) {
	periods, err := cfg.Grid()
	if err != nil {
		return Spectrum{}, err
	}

	in, err := prepare(acc, sampleRate)
	if err != nil {
		return Spectrum{}, err
	}

	values := make([]Point, len(periods))
	for i, period := range periods {
		values[i], err = in.oscillator(period, cfg.Damping)
		if err != nil {
			return Spectrum{}, fmt.Errorf("period %g s: %w", period, err)
		}
	}

	return Spectrum{Periods: periods, Values: values}, nil
}

// Horizontal combines two horizontal spectra by square root of the sum of
// squares, independently for every metric. Both must share one period grid.
func Horizontal(ns, ew Spectrum) (Spectrum, error) {
	if ns.Len() == 0 || ns.Len() != ew.Len() || len(ns.Values) != ns.Len() || len(ew.Values) != ew.Len() {
		return Spectrum{}, core.Invalidf("response: spectra of %d and %d periods cannot combine", ns.Len(), ew.Len())
	}

	out := Spectrum{
		Periods: append([]float64(nil), ns.Periods...),
		Values:  make([]Point, ns.Len()),
	}

	for i := range ns.Periods {
		if ns.Periods[i] != ew.Periods[i] {
			return Spectrum{}, core.Invalidf("response: period %d differs: %v vs %v", i, ns.Periods[i], ew.Periods[i])
		}

		a, b := ns.Values[i], ew.Values[i]
		out.Values[i] = Point{
			SD:  core.SRSS(a.SD, b.SD),
			SV:  core.SRSS(a.SV, b.SV),
			SA:  core.SRSS(a.SA, b.SA),
			PSV: core.SRSS(a.PSV, b.PSV),
		}
	}

	return out, nil
}
