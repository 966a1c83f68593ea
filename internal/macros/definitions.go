// Package macros is the conditional-text demo: macro-style definition
// and redefinition, templated substitution, build metadata reporting,
// and build-time difficulty selection via build tags.
package macros

import (
	"fmt"
	"strconv"
)

// Definitions is a mutable table of named text definitions, the demo's
// stand-in for a preprocessor symbol table. Redefining a name replaces
// its binding; Undef removes it.
type Definitions struct {
	table map[string]string
}

// NewDefinitions creates an empty definition table.
func NewDefinitions() *Definitions {
	return &Definitions{table: make(map[string]string)}
}

// Define binds name to value, replacing any prior binding.
func (d *Definitions) Define(name, value string) {
	d.table[name] = value
}

// Undef removes the binding for name. Removing an unbound name is a
// no-op, matching preprocessor semantics.
func (d *Definitions) Undef(name string) {
	delete(d.table, name)
}

// Defined reports whether name is currently bound.
func (d *Definitions) Defined(name string) bool {
	_, ok := d.table[name]
	return ok
}

// Lookup returns the value bound to name.
func (d *Definitions) Lookup(name string) (string, bool) {
	v, ok := d.table[name]
	return v, ok
}

// Int returns the value bound to name parsed as an integer.
func (d *Definitions) Int(name string) (int, error) {
	v, ok := d.table[name]
	if !ok {
		return 0, fmt.Errorf("definition %q is not bound", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("definition %q is not an integer: %w", name, err)
	}
	return n, nil
}
