// Package config loads the lrusearch configuration file.
package config

import (
	"os"

	"github.com/bjaus/lru/internal/logging"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// DefaultCapacity is the number of search terms memoized when no capacity is
// configured.
const DefaultCapacity = 10

// Config holds the settings of the lrusearch command.
type Config struct {
	// Capacity is the maximum number of memoized search terms.
	Capacity int `toml:"capacity"`
	// LogLevel is one of trace, debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string `toml:"metrics_addr"`
	// DataFile replaces the built-in dataset with a JSON array of items.
	DataFile string `toml:"data_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		LogLevel: "info",
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return errors.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
