package stationio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwbudde/algo-strongmotion/dsp/spectrum"
	"github.com/cwbudde/algo-strongmotion/measure/response"
	"github.com/cwbudde/algo-strongmotion/motion"
	"github.com/cwbudde/algo-strongmotion/motion/process"
)

var componentHeader = []string{motion.NS.String(), motion.EW.String(), motion.UD.String()}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatSpectral(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

// WriteSeries writes a datetime,NS,EW,UD table of t sampled like rec.
func WriteSeries(w io.Writer, rec motion.Record, t motion.Triple) error {
	if t.Len() != rec.Len() {
		return fmt.Errorf("stationio: series has %d samples, record %d", t.Len(), rec.Len())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"datetime"}, componentHeader...)); err != nil {
		return err
	}

	for i, ts := range rec.Timestamps() {
		row := []string{
			ts.Format(TimeLayout),
			formatSample(t[motion.NS][i]),
			formatSample(t[motion.EW][i]),
			formatSample(t[motion.UD][i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteFourier writes a frequency,NS,EW,UD amplitude table. The spectra
// share the frequency grid of the first.
func WriteFourier(w io.Writer, f [3]spectrum.Fourier) error {
	n := f[motion.NS].Len()
	for _, c := range motion.Components {
		if f[c].Len() != n {
			return fmt.Errorf("stationio: %v spectrum has %d bins, NS %d", c, f[c].Len(), n)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"frequency"}, componentHeader...)); err != nil {
		return err
	}

	for i, freq := range f[motion.NS].Frequency {
		row := []string{
			formatSpectral(freq),
			formatSpectral(f[motion.NS].Amplitude[i]),
			formatSpectral(f[motion.EW].Amplitude[i]),
			formatSpectral(f[motion.UD].Amplitude[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteResponse writes a period,NS,EW,UD,H table of metric m.
func WriteResponse(w io.Writer, spectra [3]response.Spectrum, horizontal response.Spectrum, m response.Metric) error {
	n := horizontal.Len()
	cols := make([][]float64, 0, 4)
	for _, c := range motion.Components {
		if spectra[c].Len() != n {
			return fmt.Errorf("stationio: %v response has %d periods, H %d", c, spectra[c].Len(), n)
		}
		cols = append(cols, spectra[c].Metric(m))
	}
	cols = append(cols, horizontal.Metric(m))

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{"period"}, componentHeader...), "H")); err != nil {
		return err
	}

	for i, period := range horizontal.Periods {
		row := []string{formatSpectral(period)}
		for _, col := range cols {
			row = append(row, formatSpectral(col[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteResults writes every derived table of res into dir and the updated
// metadata.
func WriteResults(dir string, md Metadata, res process.Result) error {
	tables := []struct {
		name  string
		write func(io.Writer) error
	}{
		{VelocityFile, func(w io.Writer) error { return WriteSeries(w, res.Record, res.Velocity) }},
		{DisplacementFile, func(w io.Writer) error { return WriteSeries(w, res.Record, res.Displacement) }},
		{FourierFile, func(w io.Writer) error { return WriteFourier(w, res.Fourier) }},
		{ResponseFile, func(w io.Writer) error {
			return WriteResponse(w, res.Response, res.Horizontal, res.Config.Metric())
		}},
	}

	for _, t := range tables {
		if err := writeFile(filepath.Join(dir, t.name), t.write); err != nil {
			return err
		}
	}

	return WriteMetadata(dir, UpdateMetadata(md, res))
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stationio: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("stationio: %w", cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("stationio: %s: %w", path, err)
	}

	return nil
}
