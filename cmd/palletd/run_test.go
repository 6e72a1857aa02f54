package main

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	var opts options
	require.NoError(t, env.Parse(&opts))

	assert.Equal(t, "genesis.toml", opts.GenesisPath)
	assert.Equal(t, "info", opts.LogLevel)
	assert.True(t, opts.PrettyLog)
}

func TestOptionsOverrides(t *testing.T) {
	t.Setenv("PALLETD_GENESIS", "/etc/pallet/genesis.toml")
	t.Setenv("PALLETD_LOG_LEVEL", "debug")
	t.Setenv("PALLETD_PRETTY_LOG", "false")

	var opts options
	require.NoError(t, env.Parse(&opts))

	assert.Equal(t, "/etc/pallet/genesis.toml", opts.GenesisPath)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.False(t, opts.PrettyLog)
}

func TestInitLoggerFallsBackToInfo(t *testing.T) {
	log := initLogger(options{LogLevel: "not-a-level"})

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
