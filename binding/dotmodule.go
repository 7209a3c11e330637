package binding

import (
	"fmt"
	"io"

	"github.com/ic-timon/ndot/dot"
	"github.com/ic-timon/ndot/ndarray"
)

// Docstrings of the functions registered by NewDotModule.
const (
	DotModuleDoc = "A simple example extension"
	DotDoc       = "Dot product of two float 1D arrays."
	InspectDoc   = "inspect an array"
)

// NewDotModule returns the module exposing dot and inspect. inspect writes
// to out.
func NewDotModule(out io.Writer) *Module {
	m := NewModule("dot", DotModuleDoc)
	m.Def("dot", DotDoc, func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, &TypeError{Func: "dot", Reason: fmt.Sprintf("takes 2 arguments, %d given", len(args))}
		}
		a, err := AsFloat64Array("dot", args[0])
		if err != nil {
			return nil, err
		}
		b, err := AsFloat64Array("dot", args[1])
		if err != nil {
			return nil, err
		}
		d, err := dot.Dot(a, b)
		if err != nil {
			return nil, err
		}
		return d, nil
	})
	m.Def("inspect", InspectDoc, func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, &TypeError{Func: "inspect", Reason: fmt.Sprintf("takes 1 argument, %d given", len(args))}
		}
		// nil is reported as an empty array rather than rejected
		if a, ok := args[0].(*ndarray.Array); (ok && a == nil) || args[0] == nil {
			return nil, dot.Fprint(out, nil)
		}
		a, err := AsArray("inspect", args[0])
		if err != nil {
			return nil, err
		}
		return nil, dot.Fprint(out, a)
	})
	return m
}
