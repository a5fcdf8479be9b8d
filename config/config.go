// SPDX-License-Identifier: MIT

// Package config loads process configuration for lietensor binaries from the
// environment and bridges it to lie.Option and logging.Config.
//
// Variables:
//
//	LIE_EPSILON  small-value switching threshold   (default 1e-6)
//	LIE_WORKERS  batch fan-out bound, 0 = GOMAXPROCS (default 0)
//	LIE_GRAIN    minimum rows per worker            (default 256)
//	LIE_SEED     engine generator seed              (default 24301)
//	LOG_LEVEL    debug | info | warn | error        (default warn)
//	LOG_DEV      console logging                    (default false)
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/katalvlaran/lietensor/lie"
	"github.com/katalvlaran/lietensor/logging"
)

// ErrInvalidConfig is returned when a loaded value is outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all process configuration.
type Config struct {
	Engine  EngineConfig
	Logging LogConfig
}

// EngineConfig mirrors the lie.Engine options.
type EngineConfig struct {
	Epsilon float64 `envconfig:"LIE_EPSILON" default:"1e-6"`
	Workers int     `envconfig:"LIE_WORKERS" default:"0"`
	Grain   int     `envconfig:"LIE_GRAIN" default:"256"`
	Seed    uint64  `envconfig:"LIE_SEED" default:"24301"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns Default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Epsilon: lie.DefaultEpsilon,
			Workers: lie.DefaultWorkers,
			Grain:   lie.DefaultGrain,
			Seed:    lie.DefaultSeed,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}

// Validate checks every field against the domain lie.WithX enforces.
func (c *Config) Validate() error {
	e := c.Engine
	switch {
	case math.IsNaN(e.Epsilon) || math.IsInf(e.Epsilon, 0) || e.Epsilon <= 0:
		return fmt.Errorf("%w: LIE_EPSILON must be finite and > 0, got %g", ErrInvalidConfig, e.Epsilon)
	case e.Workers < 0:
		return fmt.Errorf("%w: LIE_WORKERS must be >= 0, got %d", ErrInvalidConfig, e.Workers)
	case e.Grain < 0:
		return fmt.Errorf("%w: LIE_GRAIN must be >= 0, got %d", ErrInvalidConfig, e.Grain)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err)
	}

	return nil
}

// EngineOptions converts the engine section to lie options, attaching logger.
// Errors: ErrInvalidConfig (options would otherwise panic).
func (c *Config) EngineOptions(logger *zap.Logger) ([]lie.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return []lie.Option{
		lie.WithEpsilon(c.Engine.Epsilon),
		lie.WithWorkers(c.Engine.Workers),
		lie.WithGrain(c.Engine.Grain),
		lie.WithSeed(c.Engine.Seed),
		lie.WithLogger(logger),
	}, nil
}

// LoggingConfig converts the logging section.
func (c *Config) LoggingConfig() logging.Config {
	base := logging.DefaultConfig()
	if c.Logging.Development {
		base = logging.DevelopmentConfig()
	}
	base.Level = c.Logging.Level

	return base
}

// NewLogger builds the configured logger.
func (c *Config) NewLogger() (*zap.Logger, error) { return logging.New(c.LoggingConfig()) }

// NewEngine builds a lie.Engine from c with logger attached.
func (c *Config) NewEngine(logger *zap.Logger) (*lie.Engine, error) {
	opts, err := c.EngineOptions(logger)
	if err != nil {
		return nil, err
	}

	return lie.NewEngine(opts...), nil
}
