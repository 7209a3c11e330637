// Package binding exposes functions to a host environment by name.
//
// A Module is a registry of named functions with docstrings. Call converts
// host values (slices, nested slices, ndarray views) into the arguments the
// bound function expects and reports conversion failures as *TypeError.
//
//	m := binding.NewDotModule(os.Stdout)
//	v, err := m.Call("dot", []float64{1, 2, 3}, []float64{4, 5, 6}) // 32.0
package binding
