// Package config loads the camelot CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/camelot/internal/logging"
	"github.com/katalvlaran/camelot/scale"
)

// Sentinel errors returned by Validate.
var (
	ErrBadScale       = errors.New("config: bad scale")
	ErrBadCount       = errors.New("config: count must be positive")
	ErrCountTooLarge  = errors.New("config: count exceeds limit")
	ErrBadMaxFrontier = errors.New("config: max_frontier must be non-negative")
	ErrBadMaxCost     = errors.New("config: max_cost must be non-negative")
	ErrBadLogLevel    = errors.New("config: bad log_level")
)

// MaxCount bounds the number of requested paths.
const MaxCount = 10000

// Config holds one search request plus logging settings.
// Zero MaxFrontier and MaxCost mean "no limit".
type Config struct {
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	Count       int    `yaml:"count"`
	MaxFrontier int    `yaml:"max_frontier"`
	MaxCost     int64  `yaml:"max_cost"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the A minor → D-flat major request for ten paths.
func Default() Config {
	return Config{
		From:        "12A",
		To:          "1B",
		Count:       10,
		MaxFrontier: 1_000_000,
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := scale.Parse(c.From); err != nil {
		return fmt.Errorf("%w: from: %w", ErrBadScale, err)
	}
	if _, err := scale.Parse(c.To); err != nil {
		return fmt.Errorf("%w: to: %w", ErrBadScale, err)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCount, c.Count)
	}
	if c.Count > MaxCount {
		return fmt.Errorf("%w: %d > %d", ErrCountTooLarge, c.Count, MaxCount)
	}
	if c.MaxFrontier < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxFrontier, c.MaxFrontier)
	}
	if c.MaxCost < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxCost, c.MaxCost)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrBadLogLevel, err)
	}

	return nil
}

// Endpoints returns the parsed source and target scales.
func (c Config) Endpoints() (scale.Scale, scale.Scale, error) {
	from, err := scale.Parse(c.From)
	if err != nil {
		return scale.Scale{}, scale.Scale{}, fmt.Errorf("%w: from: %w", ErrBadScale, err)
	}
	to, err := scale.Parse(c.To)
	if err != nil {
		return scale.Scale{}, scale.Scale{}, fmt.Errorf("%w: to: %w", ErrBadScale, err)
	}

	return from, to, nil
}
