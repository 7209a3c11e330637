package simd

import (
	"runtime"

	"github.com/viterin/vek"
)

// Info describes the CPU features the backends can use.
type Info struct {
	Impl         string   `json:"impl"`
	Arch         string   `json:"arch"`
	Features     []string `json:"features"`
	Accelerated  bool     `json:"vek_accelerated"`
	CgoAvailable bool     `json:"cgo"`
}

// RuntimeInfo returns the active implementation and vek's view of the CPU.
func RuntimeInfo() Info {
	vi := vek.Info()
	return Info{
		Impl:         Desc(),
		Arch:         runtime.GOARCH,
		Features:     vi.CPUFeatures,
		Accelerated:  vi.Acceleration,
		CgoAvailable: cgoEnabled,
	}
}

func vekAccelerated() bool {
	return vek.Info().Acceleration
}

func dotVek(a, b []float64) float64 {
	return vek.Dot(a, b)
}
