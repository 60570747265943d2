// SPDX-License-Identifier: MIT

// Package config loads matrixgen settings from YAML.
//
// A missing key keeps its default, an unknown key is an error. There is no
// global instance: callers load a Config and pass it down.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full set of tunables.
type Config struct {
	// MaxDim bounds rows and columns of constructed matrices; 0 disables the bound.
	MaxDim int `yaml:"max_dim"`

	// Tolerance is the absolute tolerance used by equality checks.
	Tolerance float64 `yaml:"tolerance"`

	// Backend selects the linear-algebra backend (native|gonum).
	Backend string `yaml:"backend"`

	// MaxExponent caps the pow exponent; 0 disables the cap.
	MaxExponent int `yaml:"max_exponent"`

	// HistoryLimit caps the registry history; 0 keeps everything.
	HistoryLimit int `yaml:"history_limit"`

	Random RandomConfig `yaml:"random"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// RandomConfig holds the defaults for random fill.
type RandomConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Kind string  `yaml:"kind"`
	// Seed 0 means "pick from the clock" in interactive tools.
	Seed int64 `yaml:"seed"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxDim:       matrix.DefaultMaxDim,
		Tolerance:    matrix.DefaultTolerance,
		Backend:      linalg.BackendNative,
		MaxExponent:  ops.DefaultMaxExponent,
		HistoryLimit: 1000,
		Random: RandomConfig{
			Min:  -10,
			Max:  10,
			Kind: matrix.IntElements.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MaxDim < 0:
		return invalid("max_dim", "must be >= 0, got %d", c.MaxDim)
	case c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0):
		return invalid("tolerance", "must be a finite value >= 0, got %v", c.Tolerance)
	case c.MaxExponent < 0:
		return invalid("max_exponent", "must be >= 0, got %d", c.MaxExponent)
	case c.HistoryLimit < 0:
		return invalid("history_limit", "must be >= 0, got %d", c.HistoryLimit)
	}
	if _, err := linalg.New(c.Backend); err != nil {
		return invalid("backend", "%v", err)
	}
	if _, err := matrix.ParseElementKind(c.Random.Kind); err != nil {
		return invalid("random.kind", "%v", err)
	}
	if math.IsNaN(c.Random.Min) || math.IsNaN(c.Random.Max) ||
		math.IsInf(c.Random.Min, 0) || math.IsInf(c.Random.Max, 0) || c.Random.Min > c.Random.Max {
		return invalid("random", "need finite min <= max, got [%v, %v]", c.Random.Min, c.Random.Max)
	}
	if _, err := c.Log.level(); err != nil {
		return invalid("log.level", "%v", err)
	}
	if f := strings.ToLower(c.Log.Format); f != FormatText && f != FormatJSON {
		return invalid("log.format", "want %q or %q, got %q", FormatText, FormatJSON, c.Log.Format)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return invalid("server.addr", "must not be empty")
	}

	return nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// MatrixOptions translates the limits into matrix constructor options.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithMaxDim(c.MaxDim)}
}

// ElementKind returns the parsed random element kind, defaulting to integers.
func (c Config) ElementKind() matrix.ElementKind {
	k, err := matrix.ParseElementKind(c.Random.Kind)
	if err != nil {
		return matrix.IntElements
	}

	return k
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))

	return lvl, err
}

// NewLogger builds a slog.Logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
