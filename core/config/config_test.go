package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lru/core/config"
)

// Every test uses its own config type because Load caches by type.

type sizeConfig struct {
	MaxSize int `env:"CONFIG_TEST_MAX_SIZE" envDefault:"25"`
}

type ttlConfig struct {
	TTL time.Duration `env:"CONFIG_TEST_TTL" envDefault:"1m"`
}

type requiredConfig struct {
	Name string `env:"CONFIG_TEST_REQUIRED_NAME,required"`
}

type badConfig struct {
	MaxSize int `env:"CONFIG_TEST_BAD_MAX_SIZE"`
}

type mustConfig struct {
	Enabled bool `env:"CONFIG_TEST_MUST_ENABLED" envDefault:"true"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_MAX_SIZE", "128")

	var cfg sizeConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 128, cfg.MaxSize)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_TTL", "5s")

	var first ttlConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, 5*time.Second, first.TTL)

	t.Setenv("CONFIG_TEST_TTL", "10s")

	var second ttlConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_BAD_MAX_SIZE", "lots")

		var cfg badConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Zero(t, cfg)
	})
}

func TestMustLoad(t *testing.T) {
	var cfg mustConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.True(t, cfg.Enabled)

	var missing requiredConfig
	assert.Panics(t, func() { config.MustLoad(&missing) })
}
