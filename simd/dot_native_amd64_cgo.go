//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

func dotNative(a, b []float64) float64 {
	return dotAVX2(a, b)
}

func nativeAvailable() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
