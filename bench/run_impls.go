package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ic-timon/ndot/bench/gen"
	"github.com/ic-timon/ndot/bench/metrics"
	"github.com/ic-timon/ndot/dot"
	"github.com/ic-timon/ndot/ndarray"
	"github.com/ic-timon/ndot/simd"
)

type impl struct {
	name string
	fn   func(a, b []float64) (float64, error)
}

// implementations 参与对比的实现；dot 为顺序累加的基准
func implementations() []impl {
	wrap := func(f func(a, b []float64) float64) func(a, b []float64) (float64, error) {
		return func(a, b []float64) (float64, error) { return f(a, b), nil }
	}
	out := []impl{
		{"dot", func(a, b []float64) (float64, error) {
			return dot.Dot(ndarray.Vector(a), ndarray.Vector(b))
		}},
		{"simd-auto(" + simd.Desc() + ")", wrap(simd.Dot)},
		{"simd-go", wrap(simd.DotGo)},
		{"vek", wrap(simd.DotVek)},
	}
	if simd.NativeAvailable() {
		out = append(out, impl{"simd-native", wrap(simd.DotNative)})
	}
	return out
}

func runImpls(w io.Writer, cfg *Config) error {
	cfg = cfg.OrDefault()
	lengths := gen.Lengths(cfg.Lengths.Min, cfg.Lengths.Max, cfg.Lengths.Factor)
	impls := implementations()
	fmt.Fprintf(w, "impls: lengths=%v iterations=%d backend=%s\n", lengths, cfg.Iterations, simd.Desc())

	var rows []metrics.ImplRow
	for _, n := range lengths {
		repeat, err := cfg.Repeat(n)
		if err != nil {
			return err
		}
		a, b := gen.RandomPair(n, cfg.Seed)
		for _, im := range impls {
			row, err := timeImpl(im, a, b, repeat)
			if err != nil {
				return fmt.Errorf("%s n=%d: %w", im.name, n, err)
			}
			rows = append(rows, row)
			fmt.Fprintf(w, "  %-18s n=%-8d repeat=%-6d %.3es/call\n", im.name, n, repeat, row.SecPerCall)
		}
	}

	path := metrics.ReportPath(cfg.ReportDir, "bench_report_impls_")
	if err := metrics.WriteImplCSV(rows, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "report written to %s\n", path)
	return nil
}

func timeImpl(im impl, a, b []float64, repeat int) (metrics.ImplRow, error) {
	durations := make([]time.Duration, repeat)
	var result float64
	for i := 0; i < repeat; i++ {
		t0 := time.Now()
		d, err := im.fn(a, b)
		durations[i] = time.Since(t0)
		if err != nil {
			return metrics.ImplRow{}, err
		}
		result = d
	}
	stats := metrics.StatsFromDurations(durations)
	return metrics.ImplRow{
		Impl:       im.name,
		Length:     len(a),
		Repeat:     repeat,
		SecPerCall: stats.Mean,
		MinSec:     stats.Min,
		Result:     result,
	}, nil
}
