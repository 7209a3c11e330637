package dot

import (
	"fmt"
	"io"
	"os"

	"github.com/ic-timon/ndot/ndarray"
)

// Inspect writes the structural metadata of a to standard output. Write
// errors on stdout are ignored; use Fprint to observe them.
func Inspect(a *ndarray.Array) {
	_ = Fprint(os.Stdout, a)
}

// Fprint writes the data address, rank, per-dimension length and stride,
// memory space and dtype classification of a to w. The array is reported
// as is; only errors from w are returned.
func Fprint(w io.Writer, a *ndarray.Array) error {
	if a == nil {
		a = &ndarray.Array{}
	}
	if _, err := fmt.Fprintf(w, "Array data pointer : %p\n", a.Data()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Array dimension : %d\n", a.Ndim()); err != nil {
		return err
	}
	for i := 0; i < a.Ndim(); i++ {
		if _, err := fmt.Fprintf(w, "Array dimension [%d] : %d\n", i, a.Shape(i)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Array stride    [%d] : %d\n", i, a.Stride(i)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Device ID = %d (cpu=%d, cuda=%d)\n",
		uint32(a.DeviceID()),
		b2i(a.Device() == ndarray.DeviceCPU),
		b2i(a.Device() == ndarray.DeviceCUDA),
	); err != nil {
		return err
	}
	dt := a.DType()
	_, err := fmt.Fprintf(w, "Array dtype: int16=%d, uint32=%d, float32=%d, float64=%d\n",
		b2i(dt == ndarray.Int16),
		b2i(dt == ndarray.Uint32),
		b2i(dt == ndarray.Float32),
		b2i(dt == ndarray.Float64),
	)
	return err
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
