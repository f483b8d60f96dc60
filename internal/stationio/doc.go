// Package stationio reads and writes the files of a station directory.
//
// A station directory holds one record:
//
//	metadata.yml          station, record and event attributes
//	waveform.csv          datetime,NS,EW,UD acceleration in gal
//	waveform.mseed        alternative input, 512-byte miniSEED records
//
// Processing adds velocity.csv, displacement.csv, fourier_spectrum.csv and
// response_spectrum.csv and updates metadata.yml with the derived peaks.
// A batch root may also carry summary_metadata.csv, one row per station.
package stationio
