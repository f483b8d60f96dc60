package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns amplitude·sin(2π·freqHz·i/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Spike returns a zero series with value at pos.
func Spike(length, pos int, value float64) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = value
	}
	return out
}

// Constant returns a series of length samples all equal to value.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
