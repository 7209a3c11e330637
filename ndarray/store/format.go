package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/ic-timon/ndot/ndarray"
)

const (
	// HeaderSize is the fixed header size; element data starts right after it.
	HeaderSize = 64

	// Magic identifies a valid ndot array file.
	Magic = "NDAR"

	// FormatVersion is the current file format version.
	FormatVersion uint16 = 1

	// MaxRank is the largest rank the header can describe.
	MaxRank = 4
)

// ErrFormat is returned for files that are not valid array files.
var ErrFormat = errors.New("store: invalid array file")

// Header holds the persisted array metadata.
type Header struct {
	Magic      [4]byte
	Version    uint16
	DType      uint8
	Ndim       uint8
	Count      uint64
	Shape      [MaxRank]uint64
	DataOffset uint64
	Reserved   [8]byte // pad to 64 bytes
}

// HeaderFor builds the header describing a.
func HeaderFor(a *ndarray.Array) (*Header, error) {
	if a.Ndim() > MaxRank {
		return nil, fmt.Errorf("%w: rank %d exceeds %d", ErrFormat, a.Ndim(), MaxRank)
	}
	if a.DType().Size() == 0 {
		return nil, fmt.Errorf("%w: dtype %s", ErrFormat, a.DType())
	}
	h := &Header{
		DType:      uint8(a.DType()),
		Ndim:       uint8(a.Ndim()),
		Count:      uint64(a.Size()),
		DataOffset: HeaderSize,
	}
	for i := 0; i < a.Ndim(); i++ {
		h.Shape[i] = uint64(a.Shape(i))
	}
	return h, nil
}

// ShapeInts returns the first Ndim entries of Shape.
func (h *Header) ShapeInts() []int {
	out := make([]int, h.Ndim)
	for i := range out {
		out[i] = int(h.Shape[i])
	}
	return out
}

// maxElements is the largest element count whose byte size fits an int.
func maxElements(size uint64) uint64 {
	return uint64(math.MaxInt) / size
}

// DataBytes returns the size of the element data in bytes.
func (h *Header) DataBytes() int64 {
	return int64(h.Count) * int64(ndarray.DType(h.DType).Size())
}

// EncodeHeader writes the header to a byte slice, padded to HeaderSize.
func EncodeHeader(h *Header) ([]byte, error) {
	if h == nil {
		return nil, errors.New("header is nil")
	}
	copy(h.Magic[:], Magic)
	h.Version = FormatVersion
	var w bytes.Buffer
	if err := binary.Write(&w, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	b := w.Bytes()
	if len(b) < HeaderSize {
		padded := make([]byte, HeaderSize)
		copy(padded, b)
		return padded, nil
	}
	return b, nil
}

// DecodeHeader reads the header from src. Returns ErrFormat if magic, version
// or layout fields are invalid.
func DecodeHeader(src []byte) (*Header, error) {
	if len(src) < HeaderSize {
		return nil, fmt.Errorf("%w: header too short", ErrFormat)
	}
	var h Header
	r := bytes.NewReader(src[:HeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: invalid magic", ErrFormat)
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrFormat, h.Version)
	}
	if ndarray.DType(h.DType).Size() == 0 {
		return nil, fmt.Errorf("%w: unknown dtype %d", ErrFormat, h.DType)
	}
	if h.Ndim > MaxRank {
		return nil, fmt.Errorf("%w: rank %d exceeds %d", ErrFormat, h.Ndim, MaxRank)
	}
	size := uint64(ndarray.DType(h.DType).Size())
	count := uint64(1)
	for i := 0; i < int(h.Ndim); i++ {
		if d := h.Shape[i]; d != 0 && count > maxElements(size)/d {
			return nil, fmt.Errorf("%w: shape %v overflows", ErrFormat, h.Shape[:h.Ndim])
		}
		count *= h.Shape[i]
	}
	if count != h.Count {
		return nil, fmt.Errorf("%w: shape holds %d elements, header says %d", ErrFormat, count, h.Count)
	}
	if h.DataOffset < HeaderSize || h.DataOffset%8 != 0 {
		return nil, fmt.Errorf("%w: bad data offset %d", ErrFormat, h.DataOffset)
	}
	return &h, nil
}
