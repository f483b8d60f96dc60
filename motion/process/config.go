package process

import (
	"fmt"

	"github.com/cwbudde/algo-strongmotion/dsp/condition"
	"github.com/cwbudde/algo-strongmotion/dsp/integrate"
	"github.com/cwbudde/algo-strongmotion/measure/response"
)

// Config aggregates the parameters of every stage.
type Config struct {
	Condition condition.Config `yaml:"condition"`
	Integrate integrate.Config `yaml:"integration"`
	Response  response.Config  `yaml:"response_spectrum"`
	// TableMetric is the response quantity of the spectrum table.
	TableMetric string `yaml:"table_metric"`
}

// DefaultConfig returns the default configuration of every stage and SV as
// the table metric.
func DefaultConfig() Config {
	return Config{
		Condition:   condition.DefaultConfig(),
		Integrate:   integrate.DefaultConfig(),
		Response:    response.DefaultConfig(),
		TableMetric: response.SV.String(),
	}
}

// Validate checks every stage configuration.
func (c Config) Validate() error {
	if err := c.Condition.Validate(); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	if err := c.Integrate.Validate(); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	if err := c.Response.Validate(); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	if _, err := response.ParseMetric(c.TableMetric); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	return nil
}

// Metric returns the parsed table metric.
func (c Config) Metric() response.Metric {
	m, err := response.ParseMetric(c.TableMetric)
	if err != nil {
		return response.SV
	}

	return m
}

// IntegrationParams records how velocity and displacement were derived.
type IntegrationParams struct {
	Method         string  `yaml:"method"`
	BaselineWindow float64 `yaml:"baseline_window_sec"`
	Cutoff         float64 `yaml:"highpass_cutoff_hz"`
	Order          int     `yaml:"highpass_order"`
}

// IntegrationParams returns the parameters recorded with the results.
func (c Config) IntegrationParams() IntegrationParams {
	return IntegrationParams{
		Method:         c.Integrate.MethodName(),
		BaselineWindow: c.Condition.BaselineWindow,
		Cutoff:         c.Condition.Cutoff,
		Order:          c.Condition.Order,
	}
}
