// Package biquad provides second-order IIR section runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for higher-order filters. [FiltFilt] runs a cascade forward and
// backward over an odd-extended signal for zero-phase filtering.
//
// Coefficient design lives in dsp/filter/design.
package biquad
