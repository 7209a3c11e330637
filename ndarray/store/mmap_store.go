package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sys/cpu"

	"github.com/ic-timon/ndot/ndarray"
)

// MmapStore is a read-only array file backed by an mmap'd region.
type MmapStore struct {
	f      *os.File
	data   mmap.MMap
	header *Header
}

// OpenMmap opens and maps an array file. The data is viewed in place, so
// only little-endian hosts are supported.
func OpenMmap(path string) (*MmapStore, error) {
	if cpu.IsBigEndian {
		return nil, errors.New("store: mmap views require a little-endian host")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	s := &MmapStore{f: f, data: m}
	h, err := DecodeHeader(m)
	if err != nil {
		s.Close()
		return nil, err
	}
	if h.DataOffset > uint64(len(m)) || h.DataBytes() > int64(len(m))-int64(h.DataOffset) {
		s.Close()
		return nil, fmt.Errorf("%w: file truncated", ErrFormat)
	}
	s.header = h
	return s, nil
}

// Header returns the decoded file header.
func (s *MmapStore) Header() *Header {
	return s.header
}

// Bytes returns the full mapped file.
func (s *MmapStore) Bytes() []byte {
	return s.data
}

// Array returns a view of the mapped elements. The view is valid until
// Close. Caller must not modify it.
func (s *MmapStore) Array() (*ndarray.Array, error) {
	if s.data == nil {
		return nil, errors.New("store: closed")
	}
	h := s.header
	start := int64(h.DataOffset)
	return ndarray.FromBytes(s.data[start:start+h.DataBytes()], ndarray.DType(h.DType), h.ShapeInts())
}

// Close unmaps the file and closes it.
func (s *MmapStore) Close() error {
	if s.data != nil {
		if err := s.data.Unmap(); err != nil {
			return err
		}
		s.data = nil
	}
	if s.f != nil {
		err := s.f.Close()
		s.f = nil
		return err
	}
	return nil
}
