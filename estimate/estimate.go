package estimate

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadConfig means a config value is out of range.
	ErrBadConfig = errors.New("estimate: invalid config")

	// ErrNegativeInput means a negative distance or stop count.
	ErrNegativeInput = errors.New("estimate: negative input")
)

// Config holds the walking-time model parameters.
type Config struct {
	// UnitsPerSecond is walking speed in coordinate units per second.
	UnitsPerSecond float64 `yaml:"units_per_second"`

	// StopSeconds is the fixed service time per visited stop, in seconds.
	StopSeconds float64 `yaml:"stop_seconds"`
}

// DefaultConfig returns the reference pace: 360.55 units per 120 s of
// walking and 90 s spent at each stop.
func DefaultConfig() Config {
	return Config{
		UnitsPerSecond: 360.55 / 120,
		StopSeconds:    90,
	}
}

// LoadConfig reads a YAML override file. Omitted fields keep their
// defaults; present fields must be positive (speed) or non-negative
// (stop time).
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("estimate: read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.UnitsPerSecond <= 0 {
		return fmt.Errorf("%w: units_per_second must be positive, got %v", ErrBadConfig, c.UnitsPerSecond)
	}
	if c.StopSeconds < 0 {
		return fmt.Errorf("%w: stop_seconds must be non-negative, got %v", ErrBadConfig, c.StopSeconds)
	}

	return nil
}

// Walk estimates the wall-clock time of covering distance coordinate
// units while making the given number of service stops.
func (c Config) Walk(distance float64, stops int) (time.Duration, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	if distance < 0 {
		return 0, fmt.Errorf("%w: distance %v", ErrNegativeInput, distance)
	}
	if stops < 0 {
		return 0, fmt.Errorf("%w: %d stops", ErrNegativeInput, stops)
	}

	seconds := distance/c.UnitsPerSecond + float64(stops)*c.StopSeconds

	return time.Duration(seconds * float64(time.Second)), nil
}
