//go:build !cgo || !(amd64 || arm64)

package simd

// dotNative falls back to pure Go when no cgo kernel is built.
func dotNative(a, b []float64) float64 {
	return dotGo(a, b)
}

func nativeAvailable() bool {
	return false
}
