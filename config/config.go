// Package config loads the library's diagnostics configuration.
//
// Configuration covers logging and warning behavior only; bindings are
// never configured from files, they are declared in code. A TOML file
// is optional, environment variables overlay it, and Watch offers live
// reload for hosts that keep a long-lived process around.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/SofianeGUEZZAR/d365-event-decorators/internal/logging"
)

// Config is the full diagnostics configuration.
type Config struct {
	Logging  Logging  `toml:"logging"`
	Warnings Warnings `toml:"warnings"`
}

// Logging configures the global logger.
type Logging struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string `toml:"level"`

	// Console switches to human-readable output instead of JSON.
	Console bool `toml:"console"`
}

// Warnings configures diagnostic emission.
type Warnings struct {
	// MissingMethod surfaces declared-but-undefined handler methods
	// as warnings. Off by default: the host runtime skips them
	// silently, and parity is the default posture.
	MissingMethod bool `toml:"missing_method"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
	}
}

// Load reads path, overlays environment variables, and returns the
// result. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus environment.
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	return fromEnv(cfg), nil
}

// fromEnv overlays D365EV_* environment variables onto cfg.
func fromEnv(cfg Config) Config {
	if v := os.Getenv("D365EV_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("D365EV_LOG_CONSOLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.Console = b
		}
	}
	if v := os.Getenv("D365EV_WARN_MISSING_METHOD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Warnings.MissingMethod = b
		}
	}
	return cfg
}

// Apply reconfigures the global logger from cfg.
func (c Config) Apply() {
	logging.Configure(logging.Config{
		Level:   c.Logging.Level,
		Console: c.Logging.Console,
	})
}
