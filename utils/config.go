package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for the game. Width and Height size the
// terminal viewport only; the board itself is unbounded.
type Config struct {
	Width               int           `json:"width" env:"LIFE_WIDTH"`
	Height              int           `json:"height" env:"LIFE_HEIGHT"`
	FrameRate           time.Duration `json:"frame_rate" env:"LIFE_FRAME_RATE"`
	AutoRestart         bool          `json:"auto_restart" env:"LIFE_AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"LIFE_STAGNATION_THRESHOLD"`
	UseBoardPool        bool          `json:"use_board_pool" env:"LIFE_USE_BOARD_POOL"`
	MaxGenerations      int           `json:"max_generations" env:"LIFE_MAX_GENERATIONS"`
	RandomDensity       float64       `json:"random_density" env:"LIFE_RANDOM_DENSITY"`
	InjectionCount      int           `json:"injection_count" env:"LIFE_INJECTION_COUNT"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseBoardPool:        true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from a JSON file, then applies any
// environment-variable overrides on top. A missing or malformed file
// degrades to defaults and reports the error, but the overrides still
// apply, so the returned config is always usable.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	var loadErr error
	if data, err := os.ReadFile(filename); err != nil {
		loadErr = errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	} else if err = json.Unmarshal(data, &config); err != nil {
		config = DefaultConfig()
		loadErr = errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err := config.ApplyEnvOverrides(); err != nil {
		return config, err
	}

	return config, loadErr
}

// ApplyEnvOverrides parses LIFE_* environment variables into the config
func (c *Config) ApplyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "[ApplyEnvOverrides] failed to parse environment")
	}
	return nil
}
