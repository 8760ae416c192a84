// Package config loads observatory defaults and a calibrator catalog from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/radiometer/pkg/radiometer"
)

var (
	// ErrUnknownCalibrator indicates that a calibrator name is not in the catalog.
	ErrUnknownCalibrator = errors.New("config: unknown calibrator")
)

var validate = validator.New()

// Calibrator is a named flux model.
type Calibrator struct {
	Coefficients []float64 `yaml:"coefficients" validate:"required,min=1"`
	// ReferenceHz is nu1 for Coefficients; zero means the library default.
	ReferenceHz float64 `yaml:"reference_hz" validate:"gte=0"`
}

// Model returns the calibrator coefficients as a flux model.
func (c Calibrator) Model() radiometer.FluxModel {
	return radiometer.FluxModel(c.Coefficients)
}

// Flux evaluates the calibrator at hz.
func (c Calibrator) Flux(hz float64) float64 {
	opts := []radiometer.Option{radiometer.WithFrequency(hz)}
	if c.ReferenceHz > 0 {
		opts = append(opts, radiometer.WithReferenceFrequency(c.ReferenceHz))
	}
	return radiometer.ModelFlux(c.Model(), opts...)
}

// Antenna describes the dish geometry.
type Antenna struct {
	Diameter   float64  `yaml:"diameter" validate:"gte=0"`
	Efficiency *float64 `yaml:"efficiency,omitempty" validate:"omitnil,gt=0,lte=1"`
}

// Atmosphere holds the opacity and airmass of the observation.
type Atmosphere struct {
	Opacity *float64 `yaml:"tau,omitempty" validate:"omitnil,gte=0"`
	Airmass *float64 `yaml:"airmass,omitempty" validate:"omitnil,gte=0"`
}

// Config is the on-disk configuration.
type Config struct {
	Antenna        Antenna               `yaml:"antenna"`
	Atmosphere     Atmosphere            `yaml:"atmosphere"`
	SkyTemperature *float64              `yaml:"tsky,omitempty" validate:"omitnil,gte=0"`
	Clip           *bool                 `yaml:"clip,omitempty"`
	ReferenceHz    float64               `yaml:"reference_hz" validate:"gte=0"`
	Calibrators    map[string]Calibrator `yaml:"calibrators" validate:"dive"`
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML data.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	for name, cal := range c.Calibrators {
		if err := cal.Model().Validate(); err != nil {
			return nil, fmt.Errorf("calibrator %q: %w", name, err)
		}
	}
	return &c, nil
}

// Params returns the optional radiometer inputs the file sets.
func (c *Config) Params() radiometer.Params {
	if c == nil {
		return radiometer.Params{}
	}
	return radiometer.Params{
		Efficiency:     c.Antenna.Efficiency,
		Opacity:        c.Atmosphere.Opacity,
		Airmass:        c.Atmosphere.Airmass,
		SkyTemperature: c.SkyTemperature,
		Clip:           c.Clip,
	}
}

// Calibrator looks up a calibrator by name.
func (c *Config) Calibrator(name string) (Calibrator, error) {
	if c != nil {
		if cal, ok := c.Calibrators[name]; ok {
			return cal, nil
		}
	}
	return Calibrator{}, fmt.Errorf("%w: %q", ErrUnknownCalibrator, name)
}

// CalibratorNames returns the catalog names in sorted order.
func (c *Config) CalibratorNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Calibrators))
	for n := range c.Calibrators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
