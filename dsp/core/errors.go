package core

import (
	"errors"
	"fmt"
)

// Error kinds reported by the engine. Stage packages wrap one of these with
// context, so callers classify failures with errors.Is.
var (
	// ErrInvalidInput marks malformed arguments: empty or mismatched series,
	// non-positive sampling rate, period, damping or other configuration.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericFailure marks a computation that cannot produce a result for
	// otherwise well-formed input, e.g. a filter cutoff at or above Nyquist.
	ErrNumericFailure = errors.New("numeric failure")
)

// Invalidf returns an error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// Numericf returns an error wrapping ErrNumericFailure.
func Numericf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNumericFailure)
}
