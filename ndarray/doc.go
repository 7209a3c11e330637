// Package ndarray provides a non-owning strided view over numeric data.
//
// An Array borrows its elements from the caller. It records the data address,
// rank, per-dimension length and stride (in elements), the element dtype and
// a memory-space tag. Constructors never copy and the view never writes to
// the data it points at.
//
// Quick start:
//
//	a := ndarray.Vector([]float64{1, 2, 3})
//	m, err := ndarray.New([]float64{1, 2, 3, 4}, 2, 2)
//	s, err := ndarray.Strided(buf, []int{4}, []int{2}) // every other element
package ndarray
