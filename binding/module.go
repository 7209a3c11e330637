package binding

import (
	"sort"
	"sync"
)

// Func is a bound function. It receives the caller's arguments unconverted.
type Func func(args ...any) (any, error)

// Def is one registered function.
type Def struct {
	Name string
	Doc  string
	fn   Func
}

// Module is a named registry of functions.
type Module struct {
	name string
	doc  string

	mu   sync.RWMutex
	defs map[string]*Def
}

// NewModule creates an empty module.
func NewModule(name, doc string) *Module {
	return &Module{
		name: name,
		doc:  doc,
		defs: make(map[string]*Def),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Doc returns the module docstring.
func (m *Module) Doc() string {
	return m.doc
}

// Def registers fn under name, replacing any previous definition.
func (m *Module) Def(name, doc string, fn Func) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs[name] = &Def{Name: name, Doc: doc, fn: fn}
}

// Lookup returns the definition registered under name.
func (m *Module) Lookup(name string) (*Def, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.defs[name]
	return d, ok
}

// Names returns the registered names in sorted order.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.defs))
	for n := range m.defs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Call invokes the function registered under name. Errors returned by the
// function are passed through unchanged.
func (m *Module) Call(name string, args ...any) (any, error) {
	d, ok := m.Lookup(name)
	if !ok {
		return nil, &AttributeError{Module: m.name, Name: name}
	}
	return d.fn(args...)
}
