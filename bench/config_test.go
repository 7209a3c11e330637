package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lengths:\n  min: 10\n  max: 40\n  factor: 2\niterations: -400\nreport_dir: out\n"), 0644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, LengthRange{Min: 10, Max: 40, Factor: 2}, cfg.Lengths)
	assert.Equal(t, -400, cfg.Iterations)
	assert.Equal(t, "out", cfg.ReportDir)
	assert.Equal(t, int64(42), cfg.Seed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("lengths: [1, 2"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestOrDefault(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, DefaultConfig(), nilCfg.OrDefault())

	cfg := (&Config{Lengths: LengthRange{Min: 50, Max: 10, Factor: 1}}).OrDefault()
	assert.Equal(t, 50, cfg.Lengths.Max)
	assert.Equal(t, 10, cfg.Lengths.Factor)
	assert.Equal(t, DefaultConfig().Iterations, cfg.Iterations)
	assert.Equal(t, "report", cfg.ReportDir)
}

func TestRepeat(t *testing.T) {
	fixed := &Config{Iterations: 7}
	r, err := fixed.Repeat(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 7, r)

	scaled := &Config{Iterations: -400}
	r, err = scaled.Repeat(10)
	require.NoError(t, err)
	assert.Equal(t, 40, r)
	r, err = scaled.Repeat(200)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	_, err = scaled.Repeat(201)
	assert.Error(t, err)
	_, err = scaled.Repeat(0)
	assert.Error(t, err)
}
