package binding

import (
	"fmt"

	"github.com/ic-timon/ndot/ndarray"
)

// AsArray converts a host value into an ndarray view. Slices are viewed in
// place; [][]float64 is copied into a contiguous rank-2 array.
func AsArray(fn string, v any) (*ndarray.Array, error) {
	switch x := v.(type) {
	case *ndarray.Array:
		if x == nil {
			return nil, &TypeError{Func: fn, Reason: "nil array"}
		}
		return x, nil
	case []float64:
		return ndarray.Vector(x), nil
	case []float32:
		return ndarray.New(x)
	case []int16:
		return ndarray.New(x)
	case []uint32:
		return ndarray.New(x)
	case [][]float64:
		return fromRows(fn, x)
	}
	return nil, &TypeError{Func: fn, Reason: fmt.Sprintf("unsupported type %T", v)}
}

func fromRows(fn string, rows [][]float64) (*ndarray.Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	flat := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, &TypeError{Func: fn, Reason: fmt.Sprintf("ragged row %d: %d != %d", i, len(r), cols)}
		}
		flat = append(flat, r...)
	}
	return ndarray.New(flat, len(rows), cols)
}

// AsFloat64Array is AsArray followed by implicit conversion to float64.
// Host arrays of another dtype are copied into a contiguous float64 array of
// the same shape. Arrays outside host memory are rejected.
func AsFloat64Array(fn string, v any) (*ndarray.Array, error) {
	a, err := AsArray(fn, v)
	if err != nil {
		return nil, err
	}
	if a.Device() != ndarray.DeviceCPU {
		return nil, &TypeError{Func: fn, Reason: fmt.Sprintf("array on %s, expected cpu", a.Device())}
	}
	if a.DType() == ndarray.Float64 {
		return a, nil
	}
	if a.DType() == ndarray.DTypeInvalid {
		return nil, &TypeError{Func: fn, Reason: "array has no dtype"}
	}
	shape := make([]int, a.Ndim())
	for i := range shape {
		shape[i] = a.Shape(i)
	}
	return ndarray.New(a.Flatten(), shape...)
}
