package dot

// Vector is a read-only view exposing rank, per-dimension length and
// float64 element access along the first dimension. *ndarray.Array
// implements it.
type Vector interface {
	Ndim() int
	Shape(i int) int
	Float64At(i int) float64
}

// contiguous is implemented by views that can lend their backing slice.
type contiguous interface {
	Float64s() ([]float64, bool)
}

// Dot returns sum(a[i]*b[i]) accumulated in index order.
// Both arguments must be rank 1 and of equal length; otherwise a *ShapeError
// is returned and no element is read.
func Dot(a, b Vector) (float64, error) {
	if a.Ndim() != 1 {
		return 0, &ShapeError{Arg: 1, Msg: msgArg1NotVector}
	}
	if b.Ndim() != 1 {
		return 0, &ShapeError{Arg: 2, Msg: msgArg2NotVector}
	}
	n := a.Shape(0)
	if n != b.Shape(0) {
		return 0, &ShapeError{Msg: msgLengthDiffers}
	}
	if x, ok := float64s(a); ok {
		if y, ok := float64s(b); ok {
			return dotSlices(x, y), nil
		}
	}
	var d float64
	for i := 0; i < n; i++ {
		d += float64(a.Float64At(i) * b.Float64At(i))
	}
	return d, nil
}

// Slices is Dot over plain slices, which are always rank 1.
func Slices(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ShapeError{Msg: msgLengthDiffers}
	}
	return dotSlices(a, b), nil
}

func float64s(v Vector) ([]float64, bool) {
	c, ok := v.(contiguous)
	if !ok {
		return nil, false
	}
	return c.Float64s()
}

// The conversion rounds each product, which keeps the compiler from fusing
// the multiply-add on targets with FMA.
func dotSlices(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += float64(a[i] * b[i])
	}
	return d
}
