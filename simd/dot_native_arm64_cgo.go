//go:build arm64 && cgo

package simd

import "golang.org/x/sys/cpu"

func dotNative(a, b []float64) float64 {
	return dotNEON(a, b)
}

func nativeAvailable() bool {
	return cpu.ARM64.HasASIMD
}
