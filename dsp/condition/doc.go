// Package condition prepares acceleration records for integration.
//
// Conditioning is two fixed stages: subtraction of the pre-event baseline
// (the mean of the leading window) and a zero-phase Butterworth high-pass
// applied forward and backward over an odd-extended series.
package condition
