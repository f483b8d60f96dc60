package stationio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-strongmotion/motion"
)

// Waveform is an acceleration input before it becomes a motion.Record.
type Waveform struct {
	Start      time.Time // zero when the input carries no time
	SampleRate float64   // Hz, zero when the input carries none
	Accel      motion.Triple
}

var timeLayouts = []string{
	TimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05.000",
	"2006/01/02 15:04:05",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

// ReadWaveform reads a datetime,NS,EW,UD table. The datetime column is
// optional; when present the first row sets the start time.
func ReadWaveform(r io.Reader) (Waveform, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Waveform{}, fmt.Errorf("stationio: waveform header: %w", err)
	}

	timeCol := -1
	cols := [3]int{-1, -1, -1}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "datetime" {
			timeCol = i
			continue
		}
		if c, err := motion.ParseComponent(name); err == nil {
			cols[c] = i
		}
	}

	for _, c := range motion.Components {
		if cols[c] < 0 {
			return Waveform{}, fmt.Errorf("stationio: waveform: missing column %v", c)
		}
	}

	var w Waveform
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Waveform{}, fmt.Errorf("stationio: waveform: %w", err)
		}

		if line == 2 && timeCol >= 0 {
			if w.Start, err = parseTime(row[timeCol]); err != nil {
				return Waveform{}, fmt.Errorf("stationio: waveform line %d: %w", line, err)
			}
		}

		for _, c := range motion.Components {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[cols[c]]), 64)
			if err != nil {
				return Waveform{}, fmt.Errorf("stationio: waveform line %d %v: %w", line, c, err)
			}
			w.Accel[c] = append(w.Accel[c], v)
		}
	}

	return w, nil
}

// LoadRecord reads the metadata and acceleration of the station in dir.
// waveform.csv is preferred over waveform.mseed. The sampling rate comes
// from the metadata, then from the miniSEED headers, then fallbackRate.
func LoadRecord(dir string, fallbackRate float64) (motion.Record, Metadata, error) {
	md, err := readOptionalMetadata(dir)
	if err != nil {
		return motion.Record{}, Metadata{}, err
	}

	var w Waveform

	switch csvPath, msPath := filepath.Join(dir, WaveformFile), filepath.Join(dir, MiniSEEDFile); {
	case exists(csvPath):
		w, err = readFile(csvPath, ReadWaveform)
	case exists(msPath):
		w, err = readFile(msPath, ReadMiniSEED)
		if err == nil && md.Record.Scale > 0 {
			for _, c := range motion.Components {
				for i := range w.Accel[c] {
					w.Accel[c][i] *= md.Record.Scale
				}
			}
		}
	default:
		return motion.Record{}, Metadata{}, fmt.Errorf("stationio: %s: no %s or %s", dir, WaveformFile, MiniSEEDFile)
	}
	if err != nil {
		return motion.Record{}, Metadata{}, err
	}

	rate := fallbackRate
	switch {
	case md.Record.SamplingRate > 0:
		rate = md.Record.SamplingRate
	case w.SampleRate > 0:
		rate = w.SampleRate
	}

	start := w.Start
	if start.IsZero() {
		start, _ = md.Start()
	}

	code := md.Station.Code
	if code == "" {
		code = filepath.Base(dir)
	}

	rec, err := motion.New(code, rate, start, w.Accel[motion.NS], w.Accel[motion.EW], w.Accel[motion.UD])
	if err != nil {
		return motion.Record{}, Metadata{}, err
	}

	return rec, md, nil
}

func readFile(path string, read func(io.Reader) (Waveform, error)) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, fmt.Errorf("stationio: %w", err)
	}
	defer f.Close()

	return read(f)
}
