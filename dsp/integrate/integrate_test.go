package integrate

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
	"github.com/cwbudde/algo-strongmotion/internal/testutil"
)

// detrend removes the least-squares line from y.
func detrend(y []float64) []float64 {
	t := make([]float64, len(y))
	for i := range t {
		t[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(t, y, nil, false)

	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] - (alpha + beta*t[i])
	}

	return out
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PadFactor != 4 {
		t.Fatalf("PadFactor=%d want 4", cfg.PadFactor)
	}

	if cfg.MethodName() != "FFT with 4x padding" {
		t.Fatalf("MethodName=%q", cfg.MethodName())
	}

	if got := NewConfig(WithPadFactor(8)).MethodName(); got != "FFT with 8x padding" {
		t.Fatalf("MethodName=%q", got)
	}
}

func TestIntegrate_SineRoundTrip(t *testing.T) {
	const (
		rate = 100.0
		freq = 1.0
		amp  = 50.0
		n    = 2000
	)

	w := 2 * math.Pi * freq
	acc := testutil.DeterministicSine(freq, rate, amp, n)

	res, err := Integrate(acc, rate, DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	if len(res.Velocity) != n || len(res.Displacement) != n {
		t.Fatalf("lengths %d/%d want %d", len(res.Velocity), len(res.Displacement), n)
	}

	wantVel := make([]float64, n)
	wantDisp := make([]float64, n)
	for i := range n {
		tt := float64(i) / rate
		wantVel[i] = -amp / w * math.Cos(w*tt)
		wantDisp[i] = -amp / (w * w) * math.Sin(w*tt)
	}

	lo, hi := n/10, 9*n/10

	velDiff, err := testutil.MaxAbsDiff(res.Velocity[lo:hi], wantVel[lo:hi])
	if err != nil {
		t.Fatal(err)
	}

	if velDiff > 1e-2*amp/w {
		t.Fatalf("velocity deviation %v exceeds 1%% of %v", velDiff, amp/w)
	}

	// Zero padding leaves a linear drift in the displacement of a record
	// that does not start at rest; compare after removing it.
	gotDisp := detrend(res.Displacement)
	refDisp := detrend(wantDisp)

	dispDiff, err := testutil.MaxAbsDiff(gotDisp[lo:hi], refDisp[lo:hi])
	if err != nil {
		t.Fatal(err)
	}

	if dispDiff > 2e-2*amp/(w*w) {
		t.Fatalf("displacement deviation %v exceeds 2%% of %v", dispDiff, amp/(w*w))
	}
}

func TestIntegrate_ZeroMean(t *testing.T) {
	acc := testutil.DeterministicNoise(3, 20, 1500)

	res, err := Integrate(acc, 100, DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	testutil.RequireFinite(t, res.Velocity)
	testutil.RequireFinite(t, res.Displacement)
	testutil.RequireNearlyEqual(t, "velocity mean", core.Mean(res.Velocity), 0, 1e-9)
	testutil.RequireNearlyEqual(t, "displacement mean", core.Mean(res.Displacement), 0, 1e-9)
}

func TestIntegrate_ConstantHasNoOutput(t *testing.T) {
	// Without padding a constant only has energy in the DC bin.
	res, err := Integrate(testutil.Constant(5, 64), 100, NewConfig(WithPadFactor(1)))
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	for i := range res.Velocity {
		if math.Abs(res.Velocity[i]) > 1e-12 || math.Abs(res.Displacement[i]) > 1e-12 {
			t.Fatalf("sample %d: v=%v d=%v want 0", i, res.Velocity[i], res.Displacement[i])
		}
	}
}

func TestIntegrate_Linear(t *testing.T) {
	a := testutil.DeterministicNoise(11, 5, 700)
	b := testutil.DeterministicSine(2.5, 100, 3, 700)

	sum := make([]float64, len(a))
	for i := range a {
		sum[i] = 2*a[i] + b[i]
	}

	ra, err := Integrate(a, 100, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	rb, err := Integrate(b, 100, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	rs, err := Integrate(sum, 100, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for i := range sum {
		testutil.RequireNearlyEqual(t, "velocity", rs.Velocity[i], 2*ra.Velocity[i]+rb.Velocity[i], 1e-9)
		testutil.RequireNearlyEqual(t, "displacement", rs.Displacement[i], 2*ra.Displacement[i]+rb.Displacement[i], 1e-9)
	}
}

func TestIntegrate_Errors(t *testing.T) {
	_, err := Integrate(nil, 100, DefaultConfig())
	testutil.RequireErrorIs(t, err, core.ErrInvalidInput)

	_, err = Integrate([]float64{1, 2}, 0, DefaultConfig())
	testutil.RequireErrorIs(t, err, core.ErrInvalidInput)

	_, err = Integrate([]float64{1, 2}, 100, NewConfig(WithPadFactor(0)))
	testutil.RequireErrorIs(t, err, core.ErrInvalidInput)
}

func BenchmarkIntegrate(b *testing.B) {
	acc := testutil.DeterministicNoise(1, 100, 18000)
	cfg := DefaultConfig()

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = Integrate(acc, 100, cfg)
	}
}
