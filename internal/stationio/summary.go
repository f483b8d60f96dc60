package stationio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/cwbudde/algo-strongmotion/measure/peak"
)

var summaryHeader = []string{
	"source", "station_code", "station_name", "lat", "lon", "height_m",
	"start_time", "duration_s", "sampling_rate_hz", "intensity",
	"acc_NS", "acc_EW", "acc_UD", "acc_H", "acc_total",
	"vel_NS", "vel_EW", "vel_UD", "vel_H", "vel_total",
	"disp_NS", "disp_EW", "disp_UD", "disp_H", "disp_total",
}

// SummaryRow flattens m into the columns of summary_metadata.csv. Absent
// values are empty.
func SummaryRow(m Metadata) []string {
	row := []string{
		m.Source,
		m.Station.Code,
		m.Station.Name,
		optional(m.Station.Lat),
		optional(m.Station.Lon),
		optional(m.Station.HeightM),
		m.Record.StartTime,
		nonZero(m.Record.Duration),
		nonZero(m.Record.SamplingRate),
		"",
	}

	if m.Intensity != nil {
		row[9] = fmt.Sprint(m.Intensity)
	}

	for _, s := range []*peak.Set{m.MaxAcceleration, m.MaxVelocityCalculated, m.MaxDisplacementCalculated} {
		if s == nil {
			row = append(row, "", "", "", "", "")
			continue
		}
		row = append(row, formatSample(s.NS), formatSample(s.EW), formatSample(s.UD),
			formatSample(s.H), formatSample(s.Total))
	}

	return row
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}

	return formatSample(*v)
}

func nonZero(v float64) string {
	if v == 0 {
		return ""
	}

	return formatSample(v)
}

// WriteSummary writes one row per station directory that has a
// metadata.yml, in the order given, and returns the number of rows.
// Without any metadata nothing is written, not even the header.
func WriteSummary(w io.Writer, dirs []string) (int, error) {
	var rows [][]string

	for _, dir := range dirs {
		m, err := ReadMetadata(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return 0, err
		}

		rows = append(rows, SummaryRow(m))
	}

	if len(rows) == 0 {
		return 0, nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return 0, err
	}
	if err := cw.WriteAll(rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// WriteSummaryFile writes root/summary_metadata.csv for the stations in
// dirs.
func WriteSummaryFile(root string, dirs []string) (int, error) {
	var n int

	err := writeFile(filepath.Join(root, SummaryFile), func(w io.Writer) error {
		var err error
		n, err = WriteSummary(w, dirs)
		return err
	})

	return n, err
}
