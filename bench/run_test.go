package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ic-timon/ndot/simd"
)

func smallConfig(t *testing.T) *Config {
	return &Config{
		Lengths:    LengthRange{Min: 10, Max: 40, Factor: 2},
		Iterations: -400,
		Seed:       1,
		ReportDir:  t.TempDir(),
	}
}

func TestRunImpls(t *testing.T) {
	cfg := smallConfig(t)
	var out bytes.Buffer
	require.NoError(t, runImpls(&out, cfg))
	assert.Contains(t, out.String(), "report written to")

	matches, err := filepath.Glob(filepath.Join(cfg.ReportDir, "bench_report_impls_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	b, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), "dot,10,40,")
	assert.Contains(t, string(b), "vek,40,10,")
}

func TestRunImplsRejectsTooFewRepeats(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Iterations = -50
	assert.Error(t, runImpls(&bytes.Buffer{}, cfg))
}

func TestRunViews(t *testing.T) {
	cfg := smallConfig(t)
	var out bytes.Buffer
	require.NoError(t, runViews(&out, cfg))
	for _, v := range []string{"contiguous", "strided", "mmap"} {
		assert.Contains(t, out.String(), v)
	}
	matches, err := filepath.Glob(filepath.Join(cfg.ReportDir, "bench_report_views_*.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestViewsAgree(t *testing.T) {
	cases, closeFn, err := buildViews(t.TempDir(), 33, 5)
	require.NoError(t, err)
	defer closeFn()
	require.Len(t, cases, 3)
	var results []float64
	for _, c := range cases {
		_, got, err := timeView(c, 2)
		require.NoError(t, err)
		results = append(results, got)
	}
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[0], results[2])
}

func TestRunInfo(t *testing.T) {
	cfg := smallConfig(t)
	var out bytes.Buffer
	require.NoError(t, runInfo(&out, cfg, true))
	assert.Contains(t, out.String(), "simd backend : "+simd.Desc())

	b, err := os.ReadFile(filepath.Join(cfg.ReportDir, "info.json"))
	require.NoError(t, err)
	var info simd.Info
	require.NoError(t, json.Unmarshal(b, &info))
	assert.Equal(t, simd.Desc(), info.Impl)
}
