package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-strongmotion/dsp/signal"
	"github.com/cwbudde/algo-strongmotion/internal/stationio"
	"github.com/cwbudde/algo-strongmotion/motion"
)

const synthDuration = 60 // seconds

var synthOrigin = time.Date(2024, 1, 1, 16, 10, 0, 0, time.UTC)

// writeSynthetic writes count stations SYN01.. under root, each holding a
// tapered sine burst on the horizontal axes and white noise on UD. Existing
// station directories are overwritten.
func writeSynthetic(root string, count int, rate float64) ([]string, error) {
	n := int(synthDuration * rate)
	dirs := make([]string, 0, count)

	for i := 1; i <= count; i++ {
		code := fmt.Sprintf("SYN%02d", i)
		g := signal.NewGenerator(signal.WithSampleRate(rate), signal.WithSeed(int64(i)))

		rec, err := synthRecord(g, code, n, float64(i))
		if err != nil {
			return nil, err
		}

		dir := filepath.Join(root, code)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := stationio.WriteSeries(&buf, rec, rec.Accel); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, stationio.WaveformFile), buf.Bytes(), 0o644); err != nil {
			return nil, err
		}

		md := stationio.Metadata{
			Source: "synthetic",
			Station: stationio.StationInfo{
				Code: code,
				Name: "synthetic " + code,
			},
			Record: stationio.RecordInfo{
				StartTime:    rec.Start.Format(stationio.TimeLayout),
				EndTime:      rec.End().Format(stationio.TimeLayout),
				SamplingRate: rate,
				Duration:     rec.Duration().Seconds(),
				NumSamples:   rec.Len(),
				Unit:         stationio.AccelerationUnit,
			},
		}
		if err := stationio.WriteMetadata(dir, md); err != nil {
			return nil, err
		}

		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// synthRecord scales the motion with k so stations differ in amplitude and
// dominant frequency.
func synthRecord(g *signal.Generator, code string, n int, k float64) (motion.Record, error) {
	ns, err := g.SineBurst(1.5/k, 120*k, n, 0.1)
	if err != nil {
		return motion.Record{}, err
	}

	ew, err := g.SineBurst(0.8*k, 90*k, n, 0.1)
	if err != nil {
		return motion.Record{}, err
	}

	ud, err := g.WhiteNoise(30*k, n)
	if err != nil {
		return motion.Record{}, err
	}

	return motion.New(code, g.SampleRate(), synthOrigin, ns, ew, ud)
}
