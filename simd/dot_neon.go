//go:build arm64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

static double DotNEON(const double* a, const double* b, size_t n) {
	float64x2_t sum0 = vdupq_n_f64(0.0);
	float64x2_t sum1 = vdupq_n_f64(0.0);
	size_t i = 0;
	for (; i + 4 <= n; i += 4) {
		sum0 = vfmaq_f64(sum0, vld1q_f64(a + i), vld1q_f64(b + i));
		sum1 = vfmaq_f64(sum1, vld1q_f64(a + i + 2), vld1q_f64(b + i + 2));
	}
	double s = vaddvq_f64(vaddq_f64(sum0, sum1));
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

func dotNEON(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	return float64(C.DotNEON(
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		C.size_t(n),
	))
}
