// 对比连续内存、跨步视图与 mmap 映射视图上的参考 dot 耗时
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ic-timon/ndot/bench/gen"
	"github.com/ic-timon/ndot/bench/metrics"
	"github.com/ic-timon/ndot/dot"
	"github.com/ic-timon/ndot/ndarray"
	"github.com/ic-timon/ndot/ndarray/store"
)

type viewCase struct {
	name string
	a, b *ndarray.Array
}

func runViews(w io.Writer, cfg *Config) error {
	cfg = cfg.OrDefault()
	lengths := gen.Lengths(cfg.Lengths.Min, cfg.Lengths.Max, cfg.Lengths.Factor)
	fmt.Fprintf(w, "views: lengths=%v iterations=%d\n", lengths, cfg.Iterations)

	tmpDir, err := os.MkdirTemp("", "ndot-bench-views-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	var rows []metrics.ViewRow
	for _, n := range lengths {
		repeat, err := cfg.Repeat(n)
		if err != nil {
			return err
		}
		cases, closeFn, err := buildViews(tmpDir, n, cfg.Seed)
		if err != nil {
			return err
		}
		var want float64
		for i, c := range cases {
			row, got, err := timeView(c, repeat)
			if err != nil {
				closeFn()
				return fmt.Errorf("%s n=%d: %w", c.name, n, err)
			}
			// 所有视图的顺序累加结果必须逐位相同
			if i == 0 {
				want = got
			} else if got != want {
				closeFn()
				return fmt.Errorf("%s n=%d: result %v differs from %v", c.name, n, got, want)
			}
			rows = append(rows, row)
			fmt.Fprintf(w, "  %-10s n=%-8d repeat=%-6d %.3es/call alloc=%dB\n", c.name, n, repeat, row.SecPerCall, row.AllocBytes)
		}
		if err := closeFn(); err != nil {
			return err
		}
	}

	path := metrics.ReportPath(cfg.ReportDir, "bench_report_views_")
	if err := metrics.WriteViewCSV(rows, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "report written to %s\n", path)
	return nil
}

// buildViews 构造同一组数据的三种视图；返回的 close 释放 mmap
func buildViews(dir string, n int, seed int64) ([]viewCase, func() error, error) {
	a, b := gen.RandomPair(n, seed)
	cases := []viewCase{{"contiguous", ndarray.Vector(a), ndarray.Vector(b)}}

	// 跨步：数据交错放在 2n 长度的缓冲区偶数位
	rng := rand.New(rand.NewSource(seed + 1))
	sa, sb := gen.RandomVector(rng, 2*n), gen.RandomVector(rng, 2*n)
	for i := 0; i < n; i++ {
		sa[2*i], sb[2*i] = a[i], b[i]
	}
	va, err := ndarray.Strided(sa, []int{n}, []int{2})
	if err != nil {
		return nil, nil, err
	}
	vb, err := ndarray.Strided(sb, []int{n}, []int{2})
	if err != nil {
		return nil, nil, err
	}
	cases = append(cases, viewCase{"strided", va, vb})

	pa, pb := filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")
	if err := store.WriteFile(pa, cases[0].a); err != nil {
		return nil, nil, err
	}
	if err := store.WriteFile(pb, cases[0].b); err != nil {
		return nil, nil, err
	}
	ma, err := store.OpenMmap(pa)
	if err != nil {
		return nil, nil, err
	}
	mb, err := store.OpenMmap(pb)
	if err != nil {
		ma.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		errA := ma.Close()
		errB := mb.Close()
		if errA != nil {
			return errA
		}
		return errB
	}
	xa, err := ma.Array()
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	xb, err := mb.Array()
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	cases = append(cases, viewCase{"mmap", xa, xb})
	return cases, closeFn, nil
}

func timeView(c viewCase, repeat int) (metrics.ViewRow, float64, error) {
	metrics.GC()
	before := metrics.Take()
	var result float64
	t0 := time.Now()
	for i := 0; i < repeat; i++ {
		d, err := dot.Dot(c.a, c.b)
		if err != nil {
			return metrics.ViewRow{}, 0, err
		}
		result = d
	}
	elapsed := time.Since(t0)
	after := metrics.Take()
	var per float64
	if repeat > 0 {
		per = elapsed.Seconds() / float64(repeat)
	}
	return metrics.ViewRow{
		View:       c.name,
		Length:     c.a.Shape(0),
		Repeat:     repeat,
		SecPerCall: per,
		AllocBytes: metrics.AllocDelta(before, after),
	}, result, nil
}
