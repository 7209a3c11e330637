package binding

import "fmt"

// TypeError reports arguments the bound function cannot accept.
type TypeError struct {
	Func   string
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s(): incompatible function arguments: %s", e.Func, e.Reason)
}

// AttributeError reports a lookup of a name the module does not define.
type AttributeError struct {
	Module string
	Name   string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("module '%s' has no attribute '%s'", e.Module, e.Name)
}
