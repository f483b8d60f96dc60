package stationio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File names inside a station directory.
const (
	MetadataFile     = "metadata.yml"
	WaveformFile     = "waveform.csv"
	MiniSEEDFile     = "waveform.mseed"
	VelocityFile     = "velocity.csv"
	DisplacementFile = "displacement.csv"
	FourierFile      = "fourier_spectrum.csv"
	ResponseFile     = "response_spectrum.csv"
	SummaryFile      = "summary_metadata.csv"
)

// TimeLayout formats sample timestamps and metadata times.
const TimeLayout = "2006-01-02T15:04:05.000"

// Discover returns the non-hidden subdirectories of root, sorted by name.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("stationio: discover %s: %w", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dirs = append(dirs, filepath.Join(root, e.Name()))
	}

	sort.Strings(dirs)

	return dirs, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
