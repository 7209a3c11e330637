package ndarray

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrLayout is returned when a shape or stride does not fit the backing data.
var ErrLayout = errors.New("ndarray: invalid layout")

// Array is a read-only strided view. The zero value is a rank-0 view with no
// data, DTypeInvalid and DeviceUnknown.
type Array struct {
	data     unsafe.Pointer
	dtype    DType
	shape    []int
	strides  []int64 // in elements
	device   Device
	deviceID int32
}

// New returns a C-contiguous view of data. With no shape the view is rank 1
// of length len(data).
func New[T Element](data []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, have %d", ErrLayout, shape, n, len(data))
	}
	return newView(dataPtr(data), dtypeOf[T](), shape, contiguousStrides(shape)), nil
}

// Strided returns a view of data with explicit per-dimension strides in
// elements. Strides must be non-negative and every addressed element must lie
// inside data.
func Strided[T Element](data []T, shape, strides []int) (*Array, error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: %d dims but %d strides", ErrLayout, len(shape), len(strides))
	}
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	st := make([]int64, len(strides))
	var last int64
	for i, s := range strides {
		if s < 0 {
			return nil, fmt.Errorf("%w: negative stride %d in dim %d", ErrLayout, s, i)
		}
		st[i] = int64(s)
		if shape[i] > 1 && s > 0 {
			if int64(shape[i]-1) > (math.MaxInt64-last)/int64(s) {
				return nil, fmt.Errorf("%w: stride %d in dim %d overflows", ErrLayout, s, i)
			}
			last += int64(shape[i]-1) * int64(s)
		}
	}
	if n > 0 && last >= int64(len(data)) {
		return nil, fmt.Errorf("%w: last element %d out of range %d", ErrLayout, last, len(data))
	}
	a := newView(dataPtr(data), dtypeOf[T](), shape, nil)
	a.strides = st
	return a, nil
}

// Vector returns a rank-1 contiguous float64 view of data.
func Vector(data []float64) *Array {
	return newView(dataPtr(data), Float64, []int{len(data)}, []int64{1})
}

// FromBytes reinterprets b, in host byte order, as a C-contiguous array of
// dtype with the given shape. b must be aligned for dtype.
func FromBytes(b []byte, dtype DType, shape []int) (*Array, error) {
	size := dtype.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: dtype %s", ErrLayout, dtype)
	}
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if n > len(b)/size {
		return nil, fmt.Errorf("%w: shape %v needs %d elements of %d bytes, have %d bytes", ErrLayout, shape, n, size, len(b))
	}
	var ptr unsafe.Pointer
	if len(b) > 0 {
		ptr = unsafe.Pointer(&b[0])
		if uintptr(ptr)%uintptr(size) != 0 {
			return nil, fmt.Errorf("%w: data not aligned to %d bytes", ErrLayout, size)
		}
	}
	return newView(ptr, dtype, shape, contiguousStrides(shape)), nil
}

func newView(ptr unsafe.Pointer, dtype DType, shape []int, strides []int64) *Array {
	return &Array{
		data:    ptr,
		dtype:   dtype,
		shape:   append([]int(nil), shape...),
		strides: strides,
		device:  DeviceCPU,
	}
}

func dataPtr[T Element](data []T) unsafe.Pointer {
	if cap(data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(data))
}

func volume(shape []int) (int, error) {
	n := 1
	for i, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative length %d in dim %d", ErrLayout, d, i)
		}
		if d > 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: shape %v overflows", ErrLayout, shape)
		}
		n *= d
	}
	return n, nil
}

func contiguousStrides(shape []int) []int64 {
	st := make([]int64, len(shape))
	acc := int64(1)
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= int64(shape[i])
	}
	return st
}

// WithDevice returns a copy of the view header tagged with another memory
// space. The data is not moved.
func (a *Array) WithDevice(dev Device, id int32) *Array {
	c := *a
	c.shape = append([]int(nil), a.shape...)
	c.strides = append([]int64(nil), a.strides...)
	c.device = dev
	c.deviceID = id
	return &c
}

// Data returns the address of the first element.
func (a *Array) Data() unsafe.Pointer {
	if a == nil {
		return nil
	}
	return a.data
}

// Ndim returns the rank. A nil view has rank 0.
func (a *Array) Ndim() int {
	if a == nil {
		return 0
	}
	return len(a.shape)
}

// Shape returns the length of dimension i.
func (a *Array) Shape(i int) int {
	return a.shape[i]
}

// Stride returns the stride of dimension i in elements.
func (a *Array) Stride(i int) int64 {
	return a.strides[i]
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// DType returns the element dtype.
func (a *Array) DType() DType {
	if a == nil {
		return DTypeInvalid
	}
	return a.dtype
}

// Device returns the memory-space tag.
func (a *Array) Device() Device {
	if a == nil {
		return DeviceUnknown
	}
	return a.device
}

// DeviceID returns the device ordinal within the memory space.
func (a *Array) DeviceID() int32 {
	if a == nil {
		return 0
	}
	return a.deviceID
}

// Contiguous reports whether the elements are laid out in C order without gaps.
func (a *Array) Contiguous() bool {
	acc := int64(1)
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] > 1 && a.strides[i] != acc {
			return false
		}
		acc *= int64(a.shape[i])
	}
	return true
}

// Float64At returns element i of the first dimension as float64.
// The view must have rank >= 1 and i must be in range; it panics otherwise.
func (a *Array) Float64At(i int) float64 {
	if len(a.shape) == 0 || i < 0 || i >= a.shape[0] {
		panic(fmt.Sprintf("ndarray: index %d out of range", i))
	}
	return a.at(int64(i) * a.strides[0])
}

// At returns the element at the given multi-dimensional index as float64.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank %d", len(idx), len(a.shape)))
	}
	var off int64
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range in dim %d", i, d))
		}
		off += int64(i) * a.strides[d]
	}
	return a.at(off)
}

func (a *Array) at(off int64) float64 {
	p := unsafe.Add(a.data, off*int64(a.dtype.Size()))
	switch a.dtype {
	case Int16:
		return float64(*(*int16)(p))
	case Uint32:
		return float64(*(*uint32)(p))
	case Float32:
		return float64(*(*float32)(p))
	case Float64:
		return *(*float64)(p)
	}
	panic("ndarray: read from invalid dtype")
}

// Float64s returns the backing slice when the view is a contiguous rank-1
// float64 array. The slice aliases the caller's data and must not be written.
func (a *Array) Float64s() ([]float64, bool) {
	if a.dtype != Float64 || len(a.shape) != 1 {
		return nil, false
	}
	if a.shape[0] > 1 && a.strides[0] != 1 {
		return nil, false
	}
	if a.shape[0] == 0 || a.data == nil {
		return []float64{}, true
	}
	return unsafe.Slice((*float64)(a.data), a.shape[0]), true
}

// Flatten copies the elements in C order into a new float64 slice.
func (a *Array) Flatten() []float64 {
	out := make([]float64, 0, a.Size())
	if a.Size() == 0 {
		return out
	}
	idx := make([]int, len(a.shape))
	for {
		out = append(out, a.At(idx...))
		d := len(idx) - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return out
		}
	}
}
