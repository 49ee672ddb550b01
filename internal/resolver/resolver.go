// Package resolver defines the narrow semantic interface the emission
// backend consumes. The checker that populated it runs upstream; the
// printer only asks two questions.
package resolver

import (
	"scribe/internal/ast"
)

// Interface answers the printer's semantic queries.
type Interface interface {
	// ConstantValue reports the statically known numeric value of a
	// property or element access, if the checker proved one.
	ConstantValue(node ast.NodeID) (float64, bool)
	// HasGlobalName reports whether name is reserved at global scope and
	// must not be shadowed by a generated identifier.
	HasGlobalName(name string) bool
}

// Table is the standard Interface implementation: plain lookup tables
// filled in by the upstream phases.
type Table struct {
	constants map[ast.NodeID]float64
	globals   map[string]struct{}
}

func NewTable() *Table {
	return &Table{
		constants: make(map[ast.NodeID]float64),
		globals:   make(map[string]struct{}),
	}
}

// SetConstantValue records a folded constant for an access node.
func (t *Table) SetConstantValue(node ast.NodeID, value float64) {
	t.constants[node] = value
}

// AddGlobalName marks name as reserved at global scope.
func (t *Table) AddGlobalName(name string) {
	t.globals[name] = struct{}{}
}

func (t *Table) ConstantValue(node ast.NodeID) (float64, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.constants[node]
	return v, ok
}

func (t *Table) HasGlobalName(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.globals[name]
	return ok
}
