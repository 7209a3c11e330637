package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ic-timon/ndot/ndarray"
)

func TestHeaderRoundtrip(t *testing.T) {
	a, err := ndarray.New([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	h, err := HeaderFor(a)
	require.NoError(t, err)
	b, err := EncodeHeader(h)
	require.NoError(t, err)
	require.Len(t, b, HeaderSize)

	got, err := DecodeHeader(b)
	require.NoError(t, err)
	assert.Equal(t, Magic, string(got.Magic[:]))
	assert.Equal(t, uint8(ndarray.Float32), got.DType)
	assert.Equal(t, []int{3, 2}, got.ShapeInts())
	assert.Equal(t, uint64(6), got.Count)
	assert.Equal(t, int64(24), got.DataBytes())
}

func TestDecodeHeaderRejects(t *testing.T) {
	h, err := HeaderFor(ndarray.Vector([]float64{1, 2}))
	require.NoError(t, err)
	good, err := EncodeHeader(h)
	require.NoError(t, err)

	_, err = DecodeHeader(good[:10])
	assert.ErrorIs(t, err, ErrFormat)

	bad := append([]byte(nil), good...)
	copy(bad, "XXXX")
	_, err = DecodeHeader(bad)
	assert.ErrorIs(t, err, ErrFormat)

	bad = append([]byte(nil), good...)
	bad[4] = 9 // version
	_, err = DecodeHeader(bad)
	assert.ErrorIs(t, err, ErrFormat)

	bad = append([]byte(nil), good...)
	bad[6] = 0 // dtype
	_, err = DecodeHeader(bad)
	assert.ErrorIs(t, err, ErrFormat)

	bad = append([]byte(nil), good...)
	bad[8] = 3 // count
	_, err = DecodeHeader(bad)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestHeaderForRejects(t *testing.T) {
	five, err := ndarray.New(make([]float64, 1), 1, 1, 1, 1, 1)
	require.NoError(t, err)
	_, err = HeaderFor(five)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = HeaderFor(&ndarray.Array{})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestWriteFileOpenMmap(t *testing.T) {
	tests := []struct {
		name string
		arr  func(t *testing.T) *ndarray.Array
		want []float64
	}{
		{
			name: "float64 vector",
			arr:  func(t *testing.T) *ndarray.Array { return ndarray.Vector([]float64{1.5, -2, 3}) },
			want: []float64{1.5, -2, 3},
		},
		{
			name: "strided is packed",
			arr: func(t *testing.T) *ndarray.Array {
				a, err := ndarray.Strided([]float64{0, 1, 2, 3, 4, 5}, []int{3}, []int{2})
				require.NoError(t, err)
				return a
			},
			want: []float64{0, 2, 4},
		},
		{
			name: "int16 matrix",
			arr: func(t *testing.T) *ndarray.Array {
				a, err := ndarray.New([]int16{-1, 2, -3, 4}, 2, 2)
				require.NoError(t, err)
				return a
			},
			want: []float64{-1, 2, -3, 4},
		},
		{
			name: "uint32",
			arr: func(t *testing.T) *ndarray.Array {
				a, err := ndarray.New([]uint32{7, 4294967295})
				require.NoError(t, err)
				return a
			},
			want: []float64{7, 4294967295},
		},
		{
			name: "empty",
			arr:  func(t *testing.T) *ndarray.Array { return ndarray.Vector(nil) },
			want: []float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.arr(t)
			path := filepath.Join(t.TempDir(), "arr.bin")
			require.NoError(t, WriteFile(path, src))
			_, err := os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))

			s, err := OpenMmap(path)
			require.NoError(t, err)
			defer s.Close()
			a, err := s.Array()
			require.NoError(t, err)
			assert.Equal(t, src.DType(), a.DType())
			assert.Equal(t, src.Ndim(), a.Ndim())
			assert.True(t, a.Contiguous())
			assert.Equal(t, tt.want, a.Flatten())
		})
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")
	require.NoError(t, WriteFile(path, ndarray.Vector([]float64{1})))
	require.NoError(t, WriteFile(path, ndarray.Vector([]float64{2, 3})))
	s, err := OpenMmap(path)
	require.NoError(t, err)
	defer s.Close()
	a, err := s.Array()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, a.Flatten())
}

func TestOpenMmapRejects(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenMmap(filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.bin")
	require.NoError(t, os.WriteFile(junk, make([]byte, HeaderSize), 0644))
	_, err = OpenMmap(junk)
	assert.ErrorIs(t, err, ErrFormat)

	path := filepath.Join(dir, "arr.bin")
	require.NoError(t, WriteFile(path, ndarray.Vector([]float64{1, 2, 3})))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	truncated := filepath.Join(dir, "truncated.bin")
	require.NoError(t, os.WriteFile(truncated, raw[:len(raw)-8], 0644))
	_, err = OpenMmap(truncated)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestClosedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")
	require.NoError(t, WriteFile(path, ndarray.Vector([]float64{1})))
	s, err := OpenMmap(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	_, err = s.Array()
	assert.Error(t, err)
}

func writeHeader(t *testing.T, h *Header) string {
	t.Helper()
	b, err := EncodeHeader(h)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "crafted.bin")
	require.NoError(t, os.WriteFile(path, b, 0644))
	return path
}

func TestMalformedHeadersRejected(t *testing.T) {
	tests := []struct {
		name string
		h    Header
	}{
		{"count overflows byte size", Header{
			DType: uint8(ndarray.Float64), Ndim: 1, Count: 1 << 62,
			Shape: [MaxRank]uint64{1 << 62}, DataOffset: HeaderSize,
		}},
		{"shape product wraps to zero", Header{
			DType: uint8(ndarray.Float64), Ndim: 2, Count: 0,
			Shape: [MaxRank]uint64{1 << 32, 1 << 32}, DataOffset: HeaderSize,
		}},
		{"int16 count past int range", Header{
			DType: uint8(ndarray.Int16), Ndim: 1, Count: 1 << 63,
			Shape: [MaxRank]uint64{1 << 63}, DataOffset: HeaderSize,
		}},
		{"rank above max", Header{
			DType: uint8(ndarray.Float64), Ndim: MaxRank + 1, Count: 1,
			Shape: [MaxRank]uint64{1, 1, 1, 1}, DataOffset: HeaderSize,
		}},
		{"data offset inside header", Header{
			DType: uint8(ndarray.Float64), Ndim: 1, Count: 0, DataOffset: 8,
		}},
		{"data offset misaligned", Header{
			DType: uint8(ndarray.Float64), Ndim: 1, Count: 0, DataOffset: HeaderSize + 4,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.h
			b, err := EncodeHeader(&h)
			require.NoError(t, err)
			_, err = DecodeHeader(b)
			assert.ErrorIs(t, err, ErrFormat)

			s, err := OpenMmap(writeHeader(t, &h))
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, s)
		})
	}
}

func TestDataBeyondFileRejected(t *testing.T) {
	tests := []struct {
		name string
		h    Header
	}{
		{"offset past end", Header{
			DType: uint8(ndarray.Float64), Ndim: 1, Count: 1,
			Shape: [MaxRank]uint64{1}, DataOffset: 1 << 62,
		}},
		{"offset wraps int64", Header{
			DType: uint8(ndarray.Float64), Ndim: 1, Count: 0,
			Shape: [MaxRank]uint64{0}, DataOffset: 1 << 63,
		}},
		{"elements past end", Header{
			DType: uint8(ndarray.Float64), Ndim: 1, Count: 1 << 20,
			Shape: [MaxRank]uint64{1 << 20}, DataOffset: HeaderSize,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.h
			s, err := OpenMmap(writeHeader(t, &h))
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, s)
		})
	}
}
