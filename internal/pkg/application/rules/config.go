package rules

import (
	"io"

	"github.com/famcare/health-engine/pkg/types"

	yaml "gopkg.in/yaml.v2"
)

type ThresholdRow struct {
	VitalType string         `yaml:"vitalType"`
	Min       float64        `yaml:"min"`
	Max       float64        `yaml:"max"`
	Severity  types.Severity `yaml:"severity"`
}

type Config struct {
	Thresholds []ThresholdRow `yaml:"thresholds"`
}

func NewConfig(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig holds the built-in clinical threshold table. Values
// strictly below min or strictly above max trigger, boundary values do
// not.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: []ThresholdRow{
			{VitalType: types.VitalHeartRate, Min: 30, Max: 150, Severity: types.SeverityCritical},
			{VitalType: types.VitalHeartRate, Min: 40, Max: 120, Severity: types.SeverityError},
			{VitalType: types.VitalHeartRate, Min: 50, Max: 100, Severity: types.SeverityWarning},

			{VitalType: types.VitalBloodOxygen, Min: 85, Max: 100, Severity: types.SeverityCritical},
			{VitalType: types.VitalBloodOxygen, Min: 90, Max: 100, Severity: types.SeverityError},
			{VitalType: types.VitalBloodOxygen, Min: 94, Max: 100, Severity: types.SeverityWarning},

			{VitalType: types.VitalTemperature, Min: 35.0, Max: 40.0, Severity: types.SeverityCritical},
			{VitalType: types.VitalTemperature, Min: 35.5, Max: 39.0, Severity: types.SeverityError},
			{VitalType: types.VitalTemperature, Min: 36.0, Max: 38.0, Severity: types.SeverityWarning},

			{VitalType: types.VitalRespiratoryRate, Min: 8, Max: 30, Severity: types.SeverityCritical},
			{VitalType: types.VitalRespiratoryRate, Min: 10, Max: 25, Severity: types.SeverityError},
			{VitalType: types.VitalRespiratoryRate, Min: 12, Max: 20, Severity: types.SeverityWarning},

			{VitalType: types.VitalBloodGlucose, Min: 54, Max: 250, Severity: types.SeverityCritical},
			{VitalType: types.VitalBloodGlucose, Min: 60, Max: 200, Severity: types.SeverityError},
			{VitalType: types.VitalBloodGlucose, Min: 70, Max: 140, Severity: types.SeverityWarning},

			{VitalType: types.VitalBloodPressureSystolic, Min: 80, Max: 180, Severity: types.SeverityCritical},
			{VitalType: types.VitalBloodPressureSystolic, Min: 90, Max: 160, Severity: types.SeverityError},
			{VitalType: types.VitalBloodPressureSystolic, Min: 100, Max: 140, Severity: types.SeverityWarning},

			{VitalType: types.VitalBloodPressureDiastolic, Min: 50, Max: 120, Severity: types.SeverityCritical},
			{VitalType: types.VitalBloodPressureDiastolic, Min: 55, Max: 100, Severity: types.SeverityError},
			{VitalType: types.VitalBloodPressureDiastolic, Min: 60, Max: 90, Severity: types.SeverityWarning},
		},
	}
}
