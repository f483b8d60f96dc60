package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

func TestTukeyShape(t *testing.T) {
	w, err := Tukey(100, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	if w[0] != 0 || w[99] != 0 {
		t.Fatalf("edges = %v, %v; want 0", w[0], w[99])
	}
	if math.Abs(w[5]-0.5) > 1e-12 || math.Abs(w[94]-0.5) > 1e-12 {
		t.Fatalf("mid-ramp = %v, %v; want 0.5", w[5], w[94])
	}
	for i := 10; i < 90; i++ {
		if w[i] != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, w[i])
		}
	}
	for i := 1; i < 10; i++ {
		if w[i] <= w[i-1] {
			t.Fatalf("ramp not increasing at %d", i)
		}
		if w[i] != w[99-i] {
			t.Fatalf("not symmetric at %d", i)
		}
	}
}

func TestTukeySlopes(t *testing.T) {
	left, err := Tukey(20, 0.25, WithSlope(SlopeLeft))
	if err != nil {
		t.Fatal(err)
	}
	if left[0] != 0 || left[19] != 1 {
		t.Fatalf("left slope edges = %v, %v", left[0], left[19])
	}

	right, err := Tukey(20, 0.25, WithSlope(SlopeRight))
	if err != nil {
		t.Fatal(err)
	}
	if right[0] != 1 || right[19] != 0 {
		t.Fatalf("right slope edges = %v, %v", right[0], right[19])
	}
}

func TestTukeyZeroFractionIsRectangular(t *testing.T) {
	w, err := Tukey(8, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestTukeyErrors(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		fraction float64
	}{
		{"empty", 0, 0.1},
		{"negative fraction", 10, -0.1},
		{"fraction above half", 10, 0.6},
		{"NaN fraction", 10, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tukey(tt.size, tt.fraction)
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	if err := Apply(buf, 0.25); err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 1, 2, 2, 2, 2, 1, 0}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}

	if err := ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("mismatched lengths: err = %v", err)
	}
}
