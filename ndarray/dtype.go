package ndarray

import "unsafe"

// DType classifies the element storage type of an Array.
type DType uint8

const (
	DTypeInvalid DType = iota
	Int16
	Uint32
	Float32
	Float64
)

// Element is the set of Go types an Array can view.
type Element interface {
	~int16 | ~uint32 | ~float32 | ~float64
}

// Size returns the element size in bytes, 0 for DTypeInvalid.
func (d DType) Size() int {
	switch d {
	case Int16:
		return 2
	case Uint32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

func (d DType) String() string {
	switch d {
	case Int16:
		return "int16"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "invalid"
}

func dtypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case int16:
		return Int16
	case uint32:
		return Uint32
	case float32:
		return Float32
	case float64:
		return Float64
	}
	// named types over a supported kind: fall back to matching size and kind
	switch unsafe.Sizeof(zero) {
	case 2:
		return Int16
	case 8:
		return Float64
	}
	if T(1)/T(2) != 0 {
		return Float32
	}
	return Uint32
}

// Device is the memory-space tag of an Array. Values follow DLPack device codes.
type Device int32

const (
	DeviceUnknown Device = 0
	DeviceCPU     Device = 1
	DeviceCUDA    Device = 2
)

func (d Device) String() string {
	switch d {
	case DeviceCPU:
		return "cpu"
	case DeviceCUDA:
		return "cuda"
	}
	return "unknown"
}
