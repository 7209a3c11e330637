// Package store provides the fixture file format for numeric arrays and an
// mmap-backed store that lends zero-copy ndarray views of the mapped data.
//
// The file format consists of:
//   - Header (64 bytes): magic, version, dtype, rank, shape, data offset
//   - Element data: the array in C order, host byte order (little-endian on disk)
//
// Views returned by MmapStore.Array are borrowed from the mapping and are
// valid until Close is called.
package store
