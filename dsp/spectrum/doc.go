// Package spectrum computes Fourier amplitude spectra of ground-motion
// records.
//
// Amplitudes follow the single-sided engineering normalization used for
// strong-motion work: |X[k]|·dt·2 for interior bins, with the DC bin and
// (for even lengths) the Nyquist bin left at |X[k]|·dt. Acceleration input
// in gal therefore yields amplitudes in gal·s.
package spectrum
