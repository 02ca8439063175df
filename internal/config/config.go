// SPDX-License-Identifier: MIT

// Package config loads the numcalc YAML configuration.
//
// Every key is optional; missing keys keep their defaults and unknown keys
// are rejected so that typos do not go unnoticed.
//
//	solver:
//	  tolerance: 1e-5
//	  max_iterations: 100
//	  round_digits: 4        # -1 returns the raw iterate
//	  brute_force_limit: 7
//	workers: 4
//	log_level: info          # debug | info | warn | error
//	metrics_file: ""         # Prometheus text dump written on exit
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcalc/calc"
	"github.com/katalvlaran/numcalc/iterative"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Solver holds the iterative solver settings.
type Solver struct {
	Tolerance       float64 `yaml:"tolerance"`
	MaxIterations   int     `yaml:"max_iterations"`
	RoundDigits     int     `yaml:"round_digits"`
	BruteForceLimit int     `yaml:"brute_force_limit"`
}

// Config is the binary's configuration.
type Config struct {
	Solver      Solver `yaml:"solver"`
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: Solver{
			Tolerance:       iterative.DefaultTolerance,
			MaxIterations:   iterative.DefaultMaxIterations,
			RoundDigits:     iterative.DefaultRoundDigits,
			BruteForceLimit: iterative.DefaultBruteForceLimit,
		},
		Workers:  calc.DefaultWorkers,
		LogLevel: "info",
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges. The error matches ErrInvalidConfig.
func (c Config) Validate() error {
	s := c.Solver
	switch {
	case math.IsNaN(s.Tolerance) || math.IsInf(s.Tolerance, 0) || s.Tolerance <= 0:
		return fmt.Errorf("%w: solver.tolerance %g must be finite and > 0", ErrInvalidConfig, s.Tolerance)
	case s.MaxIterations < 1:
		return fmt.Errorf("%w: solver.max_iterations %d must be >= 1", ErrInvalidConfig, s.MaxIterations)
	case s.RoundDigits < -1:
		return fmt.Errorf("%w: solver.round_digits %d must be >= -1", ErrInvalidConfig, s.RoundDigits)
	case s.BruteForceLimit < 0:
		return fmt.Errorf("%w: solver.brute_force_limit %d must be >= 0", ErrInvalidConfig, s.BruteForceLimit)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d must be >= 1", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return l, nil
}

// SolverOptions converts the solver section into iterative options. Call
// only on a validated Config; the option constructors panic on bad values.
func (c Config) SolverOptions() []iterative.Option {
	s := c.Solver
	opts := []iterative.Option{
		iterative.WithTolerance(s.Tolerance),
		iterative.WithMaxIterations(s.MaxIterations),
		iterative.WithBruteForceLimit(s.BruteForceLimit),
	}
	if s.RoundDigits < 0 {
		return append(opts, iterative.WithoutRounding())
	}

	return append(opts, iterative.WithRoundDigits(s.RoundDigits))
}

// Marshal renders c as YAML, e.g. for a starter config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
