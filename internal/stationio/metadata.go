package stationio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"github.com/cwbudde/algo-strongmotion/measure/peak"
	"github.com/cwbudde/algo-strongmotion/motion/process"
)

// AccelerationUnit is recorded in metadata written for new records.
const AccelerationUnit = "gal (cm/s²)"

// Metadata is the metadata.yml document. Keys this package does not know
// are kept in the Extra maps and written back unchanged.
type Metadata struct {
	Source                    string                     `yaml:"source,omitempty"`
	Station                   StationInfo                `yaml:"station"`
	Record                    RecordInfo                 `yaml:"record"`
	MaxAcceleration           *peak.Set                  `yaml:"max_acceleration,omitempty"`
	Earthquake                yaml.MapSlice              `yaml:"earthquake,omitempty"`
	Intensity                 interface{}                `yaml:"intensity,omitempty"`
	MaxVelocityCalculated     *peak.Set                  `yaml:"max_velocity_calculated,omitempty"`
	MaxDisplacementCalculated *peak.Set                  `yaml:"max_displacement_calculated,omitempty"`
	IntegrationParams         *process.IntegrationParams `yaml:"integration_params,omitempty"`
	Extra                     map[string]interface{}     `yaml:",inline"`
}

// StationInfo describes the sensor site.
type StationInfo struct {
	Code    string                 `yaml:"code,omitempty"`
	Lat     *float64               `yaml:"lat,omitempty"`
	Lon     *float64               `yaml:"lon,omitempty"`
	HeightM *float64               `yaml:"height_m,omitempty"`
	Name    string                 `yaml:"name,omitempty"`
	Extra   map[string]interface{} `yaml:",inline"`
}

// RecordInfo describes the acceleration record.
type RecordInfo struct {
	StartTime    string                 `yaml:"start_time,omitempty"`
	EndTime      string                 `yaml:"end_time,omitempty"`
	SamplingRate float64                `yaml:"sampling_rate_hz,omitempty"`
	Duration     float64                `yaml:"duration_s,omitempty"`
	NumSamples   int                    `yaml:"num_samples,omitempty"`
	Unit         string                 `yaml:"unit,omitempty"`
	// Scale converts raw miniSEED counts to gal.
	Scale float64                `yaml:"scale,omitempty"`
	Extra map[string]interface{} `yaml:",inline"`
}

// SampleRate returns the recorded sampling rate, or fallback when none is
// recorded.
func (m Metadata) SampleRate(fallback float64) float64 {
	if m.Record.SamplingRate > 0 {
		return m.Record.SamplingRate
	}

	return fallback
}

// Start parses record.start_time.
func (m Metadata) Start() (time.Time, bool) {
	if m.Record.StartTime == "" {
		return time.Time{}, false
	}

	t, err := parseTime(m.Record.StartTime)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// ReadMetadata reads dir/metadata.yml. A missing file yields an error
// matching fs.ErrNotExist.
func ReadMetadata(dir string) (Metadata, error) {
	b, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return Metadata{}, fmt.Errorf("stationio: %w", err)
	}

	var m Metadata
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Metadata{}, fmt.Errorf("stationio: %s: %w", filepath.Join(dir, MetadataFile), err)
	}

	return m, nil
}

// readOptionalMetadata treats a missing metadata.yml as empty.
func readOptionalMetadata(dir string) (Metadata, error) {
	m, err := ReadMetadata(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Metadata{}, nil
	}

	return m, err
}

// WriteMetadata writes m to dir/metadata.yml.
func WriteMetadata(dir string, m Metadata) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("stationio: encode metadata: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, MetadataFile), b, 0o644); err != nil {
		return fmt.Errorf("stationio: %w", err)
	}

	return nil
}

// UpdateMetadata returns m with the peaks and parameters of res. Existing
// acceleration peaks are kept; record attributes are filled only where m
// has none.
func UpdateMetadata(m Metadata, res process.Result) Metadata {
	rec := res.Record

	if m.Station.Code == "" {
		m.Station.Code = rec.Station
	}

	if m.Record.StartTime == "" && !rec.Start.IsZero() {
		m.Record.StartTime = rec.Start.Format(TimeLayout)
		m.Record.EndTime = rec.End().Format(TimeLayout)
	}

	if m.Record.SamplingRate <= 0 {
		m.Record.SamplingRate = rec.SampleRate
	}

	if m.Record.NumSamples == 0 {
		m.Record.NumSamples = rec.Len()
		m.Record.Duration, _ = decimal.NewFromFloat(rec.Duration().Seconds()).Round(2).Float64()
	}

	if m.Record.Unit == "" {
		m.Record.Unit = AccelerationUnit
	}

	if m.MaxAcceleration == nil {
		acc := res.Peaks.Acceleration.Round(3)
		m.MaxAcceleration = &acc
	}

	vel := res.Peaks.Velocity.Round(3)
	disp := res.Peaks.Displacement.Round(3)
	params := res.IntegrationParams()

	m.MaxVelocityCalculated = &vel
	m.MaxDisplacementCalculated = &disp
	m.IntegrationParams = &params

	return m
}
