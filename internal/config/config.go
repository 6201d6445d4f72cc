// Package config loads the TOML configuration of the keccakf tool.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	keccak "github.com/Giulio2002/keccakf"
)

// MinTraceSteps is the latency of one full sequencer run: the latch plus one step per round.
const MinTraceSteps = keccak.Rounds + 1

// Formats accepted by Vectors.Format.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Config is the full tool configuration.
type Config struct {
	Log     Log
	Trace   Trace
	Vectors Vectors
}

// Log configures the logrus logger.
type Log struct {
	Level string
}

// Trace configures stepped runs of the sequencer.
type Trace struct {
	// MaxSteps bounds how many steps a trace may take before it is treated as hung.
	MaxSteps int
}

// Vectors configures golden vector generation.
type Vectors struct {
	Seed    string
	Count   int
	Workers int
	Format  string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:   Log{Level: "info"},
		Trace: Trace{MaxSteps: 50},
		Vectors: Vectors{
			Seed:    "keccakf",
			Count:   16,
			Workers: 4,
			Format:  FormatJSON,
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return c, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "Log.Level")
	}
	if c.Trace.MaxSteps < MinTraceSteps {
		return errors.Errorf("Trace.MaxSteps must be at least %d, got %d", MinTraceSteps, c.Trace.MaxSteps)
	}
	if c.Vectors.Count < 0 {
		return errors.Errorf("Vectors.Count must not be negative, got %d", c.Vectors.Count)
	}
	if c.Vectors.Workers < 1 {
		return errors.Errorf("Vectors.Workers must be positive, got %d", c.Vectors.Workers)
	}
	switch c.Vectors.Format {
	case FormatJSON, FormatTOML:
	default:
		return errors.Errorf("Vectors.Format must be %q or %q, got %q", FormatJSON, FormatTOML, c.Vectors.Format)
	}
	return nil
}
