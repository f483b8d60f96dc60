// Package response computes elastic response spectra of single-degree-of-
// freedom oscillators.
//
// Each oscillator is solved in the frequency domain: the input spectrum is
// multiplied by the displacement transfer function
//
//	H(ω) = -1 / (ωn² - ω² + 2i·h·ωn·ω)
//
// and the relative displacement, relative velocity and absolute acceleration
// are transformed back to take their peak magnitudes. The input is
// zero-padded to twice the next power of two so that the free vibration after
// the record does not wrap onto its start.
package response
