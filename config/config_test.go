// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lietensor/config"
	"github.com/katalvlaran/lietensor/lie"
)

// TestLoadDefaults: an empty environment yields Default().
func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LIE_EPSILON", "LIE_WORKERS", "LIE_GRAIN", "LIE_SEED", "LOG_LEVEL", "LOG_DEV"} {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, lie.DefaultEpsilon, cfg.Engine.Epsilon)
	require.Equal(t, lie.DefaultSeed, cfg.Engine.Seed)
}

// TestLoadFromEnv reads every variable.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LIE_EPSILON", "1e-9")
	t.Setenv("LIE_WORKERS", "3")
	t.Setenv("LIE_GRAIN", "16")
	t.Setenv("LIE_SEED", "7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.EngineConfig{Epsilon: 1e-9, Workers: 3, Grain: 16, Seed: 7}, cfg.Engine)
	require.Equal(t, config.LogConfig{Level: "debug", Development: true}, cfg.Logging)
	require.True(t, cfg.LoggingConfig().Development)

	e, err := cfg.NewEngine(zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1e-9, e.Epsilon())
	require.Equal(t, 3, e.Workers())
}

// TestLoadRejectsBadValues covers parse and domain failures.
func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("LIE_WORKERS", "many")
	_, err := config.Load()
	require.Error(t, err)
	require.Equal(t, config.Default(), config.LoadOrDefault())

	t.Setenv("LIE_WORKERS", "-2")
	_, err = config.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("LIE_WORKERS", "0")
	t.Setenv("LIE_EPSILON", "0")
	_, err = config.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("LIE_EPSILON", "1e-6")
	t.Setenv("LOG_LEVEL", "chatty")
	_, err = config.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestEngineOptionsValidate refuses values lie.WithX would panic on.
func TestEngineOptionsValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.Grain = -1
	_, err := cfg.EngineOptions(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = cfg.NewEngine(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.Default()
	opts, err := cfg.EngineOptions(nil)
	require.NoError(t, err)
	require.Len(t, opts, 5)
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
}
