// Package config provides the compiler configuration and its defaults.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/tiscc/core"
	"github.com/sarchlab/tiscc/encoding"
)

// Config holds every compiler option that can come from a file.
type Config struct {
	Format   encoding.Format     `yaml:"format"`
	Overflow core.OverflowPolicy `yaml:"overflow"`
	Lint     bool                `yaml:"lint"`
	Listing  bool                `yaml:"listing"`
	LogLevel string              `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:   encoding.FormatHex,
		Overflow: core.OverflowWrap,
		LogLevel: "warn",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every option names a known value.
func (c Config) Validate() error {
	if _, err := encoding.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if _, err := core.ParseOverflowPolicy(string(c.Overflow)); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel turns a level name into a slog level. "trace" selects
// core.LevelTrace.
func ParseLevel(name string) (slog.Level, error) {
	if strings.EqualFold(name, "trace") {
		return core.LevelTrace, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, errors.Errorf("unknown log level %q", name)
	}
	return level, nil
}
