package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	EngineSparse = "sparse"
	EngineDense  = "dense"

	PatternRandom = "random"
)

// ErrInvalidConfig is the cause of every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Engine              string        `json:"engine"`
	Pattern             string        `json:"pattern"`
	PatternFile         string        `json:"pattern_file"`
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
	Color               bool          `json:"color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Engine:              EngineSparse,
		Pattern:             PatternRandom,
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		UseBoundedGrid:      true, // Enable active region optimization
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Seed:                1,
		Color:               true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Engine != EngineSparse && c.Engine != EngineDense:
		return errors.Wrapf(ErrInvalidConfig, "unknown engine %q", c.Engine)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random density %v outside [0, 1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative frame rate %v", c.FrameRate)
	case c.MaxGenerations < 0 || c.StagnationThreshold < 0 || c.InjectionCount < 0:
		return errors.Wrap(ErrInvalidConfig, "counts must not be negative")
	}
	return nil
}
