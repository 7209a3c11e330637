//go:build cgo

package simd

const cgoEnabled = true
