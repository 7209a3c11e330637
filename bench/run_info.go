package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ic-timon/ndot/bench/metrics"
	"github.com/ic-timon/ndot/simd"
)

func runInfo(w io.Writer, cfg *Config, asJSON bool) error {
	cfg = cfg.OrDefault()
	info := simd.RuntimeInfo()
	fmt.Fprintf(w, "simd backend : %s\n", info.Impl)
	fmt.Fprintf(w, "arch         : %s (cgo=%t)\n", info.Arch, info.CgoAvailable)
	fmt.Fprintf(w, "vek          : accelerated=%t\n", info.Accelerated)
	fmt.Fprintf(w, "cpu features : %s\n", strings.Join(info.Features, " "))
	if !asJSON {
		return nil
	}
	path := filepath.Join(cfg.ReportDir, "info.json")
	if err := metrics.WriteJSON(info, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "report written to %s\n", path)
	return nil
}
