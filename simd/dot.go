// Package simd provides accelerated float64 dot products used to compare
// against the sequential reference in package dot. Automatically selects the
// best implementation based on GOARCH, CGO availability and CPU features.
//
// The accelerated kernels reorder the summation, so their results may differ
// from the reference in the last bits.
package simd

var (
	dotImpl     func(a, b []float64) float64
	dotImplDesc string
)

func init() {
	// Default; dispatch files override in init() based on GOARCH and CGO.
	if dotImpl == nil {
		if vekAccelerated() {
			dotImpl = dotVek
			dotImplDesc = "vek"
		} else {
			dotImpl = dotGo
			dotImplDesc = "Go"
		}
	}
}

// Dot computes the dot product of two float64 vectors with the best
// available implementation. Returns 0 if lengths differ or are zero.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	if dotImpl != nil {
		return dotImpl(a, b)
	}
	return dotGo(a, b)
}

// DotGo is the pure Go 4-way unrolled implementation.
func DotGo(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return dotGo(a, b)
}

// DotVek delegates to github.com/viterin/vek.
func DotVek(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return dotVek(a, b)
}

// DotNative uses the cgo kernel for this GOARCH (AVX2 on amd64, NEON on
// arm64), or pure Go when none is built or the CPU lacks the features.
func DotNative(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	if !nativeAvailable() {
		return dotGo(a, b)
	}
	return dotNative(a, b)
}

// NativeAvailable reports whether DotNative runs a cgo kernel.
func NativeAvailable() bool {
	return nativeAvailable()
}

// Desc returns a description of the current dot product implementation (for logging).
func Desc() string {
	if dotImplDesc != "" {
		return dotImplDesc
	}
	return "Go"
}

// dotGo keeps four independent partial sums and folds the tail in order.
func dotGo(a, b []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i+0] * b[i+0]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
