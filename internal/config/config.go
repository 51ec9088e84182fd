// Package config loads the YAML configuration for langara-ics.
//
// All settings have working defaults; a config file only needs the fields it
// overrides. The fixed UTC offset exists because the registration system
// computes recurrence termination against a constant UTC-8, with no
// daylight-saving adjustment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// Institution is the campus name used in event locations.
	Institution string `yaml:"institution"`

	// Timezone is the IANA timezone emitted in the calendar (X-WR-TIMEZONE
	// and the TZID on event timestamps).
	Timezone string `yaml:"timezone"`

	// UTCOffsetHours is the fixed local-to-UTC offset, in hours, applied to
	// recurrence termination timestamps.
	UTCOffsetHours int `yaml:"utc_offset_hours"`

	// ProdID is the iCalendar product identifier.
	ProdID string `yaml:"prodid"`

	// HTTPTimeoutSeconds bounds page fetches when reading from a URL.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`
}

// Default returns the built-in Langara configuration.
func Default() *Config {
	return &Config{
		Institution:        "Langara College",
		Timezone:           "America/Los_Angeles",
		UTCOffsetHours:     8,
		ProdID:             "-//langara-ics//course-schedule//EN",
		HTTPTimeoutSeconds: 30,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged; a named file that is missing or malformed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
