package store

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"

	"github.com/ic-timon/ndot/ndarray"
)

// WriteFile writes a to path in C order (write to path+".tmp", then rename).
// Strided views are packed; the file always holds a contiguous array.
func WriteFile(path string, a *ndarray.Array) error {
	h, err := HeaderFor(a)
	if err != nil {
		return err
	}
	hdr, err := EncodeHeader(h)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(hdr); err != nil {
		f.Close()
		return err
	}
	if err := writeElements(w, a); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Remove(path) // ignore error if not exists
	return os.Rename(tmp, path)
}

func writeElements(w *bufio.Writer, a *ndarray.Array) error {
	var buf [8]byte
	for _, v := range a.Flatten() {
		var b []byte
		switch a.DType() {
		case ndarray.Int16:
			binary.LittleEndian.PutUint16(buf[:], uint16(int16(v)))
			b = buf[:2]
		case ndarray.Uint32:
			binary.LittleEndian.PutUint32(buf[:], uint32(v))
			b = buf[:4]
		case ndarray.Float32:
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
			b = buf[:4]
		default:
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			b = buf[:8]
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
