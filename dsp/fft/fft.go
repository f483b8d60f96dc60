// Package fft provides the real-input discrete Fourier transform used by the
// spectral, integration and response-spectrum stages.
//
// Conventions follow the usual rfft/irfft pair: the forward transform of an
// n-sample sequence yields n/2+1 unnormalized bins, and the inverse divides
// by n so that Inverse(Forward(x)) == x.
package fft

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-strongmotion/dsp/core"
)

// Plan is a real FFT of fixed length. A Plan holds scratch memory and is not
// safe for concurrent use; create one per goroutine.
type Plan struct {
	n    int
	plan *algofft.Plan[complex128]
	buf  []complex128
}

// NewPlan returns a plan for n-point transforms. Any positive n is accepted.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft: plan length must be > 0: %d: %w", n, core.ErrInvalidInput)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: create plan of length %d: %w", n, err)
	}

	return &Plan{
		n:    n,
		plan: plan,
		buf:  make([]complex128, n),
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Bins returns the number of complex bins, n/2+1.
func (p *Plan) Bins() int { return p.n/2 + 1 }

// Forward zero-pads x to the plan length and returns its n/2+1 complex bins.
// x longer than the plan length is an error.
func (p *Plan) Forward(x []float64) ([]complex128, error) {
	if len(x) > p.n {
		return nil, fmt.Errorf("fft: input length %d exceeds plan length %d: %w", len(x), p.n, core.ErrInvalidInput)
	}

	for i := range p.buf {
		p.buf[i] = 0
	}
	for i, v := range x {
		p.buf[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.buf, p.buf); err != nil {
		return nil, fmt.Errorf("fft: forward: %w", err)
	}

	out := make([]complex128, p.Bins())
	copy(out, p.buf)

	return out, nil
}

// Inverse returns the n-sample real sequence whose spectrum is coeff,
// normalized by 1/n. The imaginary parts of the DC bin and, for even n,
// the Nyquist bin do not contribute.
func (p *Plan) Inverse(coeff []complex128) ([]float64, error) {
	if len(coeff) != p.Bins() {
		return nil, fmt.Errorf("fft: got %d bins, want %d: %w", len(coeff), p.Bins(), core.ErrInvalidInput)
	}

	// Rebuild the Hermitian spectrum of a real sequence.
	p.buf[0] = complex(real(coeff[0]), 0)
	for k := 1; k < len(coeff); k++ {
		p.buf[k] = coeff[k]
		p.buf[p.n-k] = cmplx.Conj(coeff[k])
	}
	if p.n%2 == 0 && p.n > 1 {
		p.buf[p.n/2] = complex(real(coeff[p.n/2]), 0)
	}

	if err := p.plan.Inverse(p.buf, p.buf); err != nil {
		return nil, fmt.Errorf("fft: inverse: %w", err)
	}

	out := make([]float64, p.n)
	for i, v := range p.buf {
		out[i] = real(v)
	}

	return out, nil
}

// Frequencies returns the n/2+1 bin frequencies k/(n·dt) in Hz for an
// n-point transform sampled every dt seconds.
func Frequencies(n int, dt float64) []float64 {
	if n <= 0 || dt <= 0 {
		return nil
	}
	out := make([]float64, n/2+1)
	df := 1 / (float64(n) * dt)
	for k := range out {
		out[k] = float64(k) * df
	}
	return out
}

// NextPow2 returns the smallest power of two >= n, with NextPow2(n) == 1 for
// n <= 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
