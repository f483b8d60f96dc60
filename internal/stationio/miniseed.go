package stationio

import (
	"fmt"
	"io"
	"strings"

	"github.com/GeoNet/kit/seis/ms"

	"github.com/cwbudde/algo-strongmotion/motion"
)

// RecordLength is the miniSEED block size read by ReadMiniSEED.
const RecordLength = 512

// channelComponent maps the orientation code, the last letter of a SEED
// channel name, to a sensor axis.
func channelComponent(channel string) (motion.Component, bool) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return 0, false
	}

	switch channel[len(channel)-1] {
	case 'N', '1':
		return motion.NS, true
	case 'E', '2':
		return motion.EW, true
	case 'Z', '3':
		return motion.UD, true
	default:
		return 0, false
	}
}

// ReadMiniSEED reads fixed-length miniSEED records of up to three channels
// and appends the samples of each channel in record order. Records of other
// channels are skipped. The earliest record start becomes the waveform
// start; the first record rate the waveform rate.
func ReadMiniSEED(r io.Reader) (Waveform, error) {
	var w Waveform

	record := make([]byte, RecordLength)

loop:
	for {
		_, err := io.ReadFull(r, record)
		switch {
		case err == io.EOF:
			break loop
		case err != nil:
			return Waveform{}, fmt.Errorf("stationio: miniseed: %w", err)
		}

		msr, err := ms.NewRecord(record)
		if err != nil {
			return Waveform{}, fmt.Errorf("stationio: miniseed: %w", err)
		}

		c, ok := channelComponent(msr.Channel())
		if !ok {
			continue
		}

		samples, err := msr.Float64s()
		if err != nil {
			return Waveform{}, fmt.Errorf("stationio: miniseed %s: %w", msr.SrcName(false), err)
		}

		if w.SampleRate == 0 {
			w.SampleRate = msr.SampleRate()
		}
		if start := msr.StartTime(); w.Start.IsZero() || start.Before(w.Start) {
			w.Start = start
		}

		w.Accel[c] = append(w.Accel[c], samples...)
	}

	if len(w.Accel[motion.NS])+len(w.Accel[motion.EW])+len(w.Accel[motion.UD]) == 0 {
		return Waveform{}, fmt.Errorf("stationio: miniseed: no acceleration channels")
	}

	return w, nil
}
