package biquad

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func lowpassCoeffs() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

// twoSectionCoeffs returns two biquad sections for a 4th-order cascade.
func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		lowpassCoeffs(),
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestSection_ProcessSample_Impulse(t *testing.T) {
	s := NewSection(lowpassCoeffs())
	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}

	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if got := s.ProcessSample(x); !almostEqual(got, w, eps) {
			t.Fatalf("y[%d]=%.15f want %.15f", i, got, w)
		}
	}
}

func TestSection_ProcessBlock_MatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, 0.1}

	ref := NewSection(lowpassCoeffs())
	s := NewSection(lowpassCoeffs())

	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf)

	for i, x := range input {
		if want := ref.ProcessSample(x); !almostEqual(buf[i], want, eps) {
			t.Fatalf("sample %d: block=%.15f sample=%.15f", i, buf[i], want)
		}
	}

	if s.State() != ref.State() {
		t.Fatalf("state mismatch: %v vs %v", s.State(), ref.State())
	}
}

func TestSection_StateRoundTrip(t *testing.T) {
	s := NewSection(lowpassCoeffs())
	s.ProcessSample(1)
	saved := s.State()

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("reset state=%v", s.State())
	}

	s.SetState(saved)
	if s.State() != saved {
		t.Fatalf("restored state=%v want %v", s.State(), saved)
	}
}

func TestSection_SteadyStateHoldsConstant(t *testing.T) {
	c := lowpassCoeffs()
	s := NewSection(c)

	const x0 = 3.5
	zi := c.SteadyState()
	s.SetState([2]float64{zi[0] * x0, zi[1] * x0})

	want := c.DCGain() * x0
	for i := range 20 {
		if got := s.ProcessSample(x0); !almostEqual(got, want, 1e-12) {
			t.Fatalf("y[%d]=%.15f want %.15f", i, got, want)
		}
	}
}

func TestChain_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])
	chain := NewChain(coeffs)

	if chain.NumSections() != 2 || chain.Order() != 4 {
		t.Fatalf("sections=%d order=%d", chain.NumSections(), chain.Order())
	}

	for i, x := range []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8} {
		want := s2.ProcessSample(s1.ProcessSample(x))
		if got := chain.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: chain=%.15f ref=%.15f", i, got, want)
		}
	}
}

func TestChain_SetSteadyState(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)

	const x0 = -2.0
	chain.SetSteadyState(x0)

	want := x0 * coeffs[0].DCGain() * coeffs[1].DCGain()
	buf := []float64{x0, x0, x0, x0, x0, x0}
	chain.ProcessBlock(buf)

	for i, y := range buf {
		if !almostEqual(y, want, 1e-12) {
			t.Fatalf("y[%d]=%.15f want %.15f", i, y, want)
		}
	}
}

func TestOddExtend(t *testing.T) {
	x := []float64{1, 2, 4, 7, 11}

	ext, err := OddExtend(x, 2)
	if err != nil {
		t.Fatalf("OddExtend: %v", err)
	}

	want := []float64{2*1 - 4, 2*1 - 2, 1, 2, 4, 7, 11, 2*11 - 7, 2*11 - 4}
	if len(ext) != len(want) {
		t.Fatalf("len=%d want %d", len(ext), len(want))
	}

	for i := range want {
		if ext[i] != want[i] {
			t.Fatalf("ext[%d]=%v want %v", i, ext[i], want[i])
		}
	}
}

func TestOddExtend_TooShort(t *testing.T) {
	if _, err := OddExtend([]float64{1, 2, 3}, 3); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := OddExtend([]float64{1, 2, 3}, -1); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFiltFilt_ConstantPassesAtDCGainSquared(t *testing.T) {
	coeffs := twoSectionCoeffs()
	x := make([]float64, 64)
	for i := range x {
		x[i] = 1.25
	}

	y, err := FiltFilt(coeffs, x, 15)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}

	g := coeffs[0].DCGain() * coeffs[1].DCGain()
	want := 1.25 * g * g

	for i, v := range y {
		if !almostEqual(v, want, 1e-10) {
			t.Fatalf("y[%d]=%.15f want %.15f", i, v, want)
		}
	}

	if x[0] != 1.25 {
		t.Fatal("input modified")
	}
}

func TestFiltFilt_ZeroPhaseImpulse(t *testing.T) {
	const n = 401

	x := make([]float64, n)
	x[n/2] = 1

	y, err := FiltFilt(twoSectionCoeffs(), x, 15)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}

	if core.ArgMaxAbs(y) != n/2 {
		t.Fatalf("peak moved to %d", core.ArgMaxAbs(y))
	}

	for k := 1; k < 50; k++ {
		if !almostEqual(y[n/2-k], y[n/2+k], 1e-12) {
			t.Fatalf("asymmetric at lag %d: %.15f vs %.15f", k, y[n/2-k], y[n/2+k])
		}
	}
}

func TestFiltFilt_Errors(t *testing.T) {
	if _, err := FiltFilt(nil, make([]float64, 32), 15); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for no sections, got %v", err)
	}

	if _, err := FiltFilt(twoSectionCoeffs(), make([]float64, 15), 15); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short input, got %v", err)
	}
}

func TestResponse_MatchesMagnitudeSquared(t *testing.T) {
	c := lowpassCoeffs()
	sr := 100.0

	for _, f := range []float64{0, 1, 5, 20, 49} {
		h := c.Response(f, sr)
		abs2 := real(h)*real(h) + imag(h)*imag(h)

		if got := c.MagnitudeSquared(f, sr); !almostEqual(got, abs2, 1e-10) {
			t.Fatalf("f=%v: closed=%.15f |H|^2=%.15f", f, got, abs2)
		}

		if got, want := c.MagnitudeDB(f, sr), 10*math.Log10(abs2); !almostEqual(got, want, 1e-9) {
			t.Fatalf("f=%v: dB=%v want %v", f, got, want)
		}
	}

	if dc := cmplx.Abs(c.Response(0, sr)); !almostEqual(dc, c.DCGain(), 1e-12) {
		t.Fatalf("|H(0)|=%v want DC gain %v", dc, c.DCGain())
	}
}

func TestChain_ResponseAndImpulse(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)

	h := chain.Response(10, 100)
	want := coeffs[0].Response(10, 100) * coeffs[1].Response(10, 100)
	if cmplx.Abs(h-want) > 1e-12 {
		t.Fatalf("chain response=%v want %v", h, want)
	}

	chain.ProcessSample(1)
	saved := chain.State()

	ir := chain.ImpulseResponse(8)
	if len(ir) != 8 || !almostEqual(ir[0], 0.025, eps) {
		t.Fatalf("ir=%v", ir)
	}

	if chain.State()[0] != saved[0] || chain.State()[1] != saved[1] {
		t.Fatal("ImpulseResponse modified chain state")
	}

	if chain.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n=0")
	}
}

func TestStable(t *testing.T) {
	c := lowpassCoeffs()
	if !c.Stable() {
		t.Fatalf("poles %v should be stable", c.Poles())
	}

	unstable := Coefficients{B0: 1, A1: -2.5, A2: 1.2}
	if unstable.Stable() {
		t.Fatalf("poles %v should be unstable", unstable.Poles())
	}

	if !NewChain(twoSectionCoeffs()).Stable() {
		t.Fatal("chain should be stable")
	}

	z := c.Zeros()
	for _, r := range z {
		if !almostEqual(cmplx.Abs(r+1), 0, 1e-6) {
			t.Fatalf("lowpass zeros %v should sit at z=-1", z)
		}
	}
}

func BenchmarkFiltFilt(b *testing.B) {
	x := make([]float64, 1<<14)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.01)
	}

	coeffs := twoSectionCoeffs()

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = FiltFilt(coeffs, x, 15)
	}
}
