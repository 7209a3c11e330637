// Package dot provides the inner product of two rank-1 numeric views and a
// diagnostic that prints the structural metadata of an array.
//
// Dot validates its arguments before touching any element:
//
//	d, err := dot.Dot(ndarray.Vector(a), ndarray.Vector(b))
//	if errors.Is(err, dot.ErrInvalidArgument) {
//		// rank or length mismatch
//	}
//
// The accumulation runs in index order on a single goroutine, so the result
// is reproducible bit for bit. See package simd for accelerated variants
// whose summation order differs.
package dot
