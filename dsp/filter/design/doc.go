// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad. Single sections follow the RBJ cookbook; Butterworth
// cascades combine RBJ sections with the Butterworth pole Q values, which is
// the bilinear transform of the analog prototype with the cutoff prewarped.
//
// Designers return the zero value or nil when parameters are invalid.
package design
