// Package label implements the IPPcode22 label table: a name to
// instruction-index mapping built in a single pre-execution pass over the
// sorted instruction vector and immutable thereafter.
package label

import (
	"github.com/dolthub/swiss"

	"github.com/ipp22/ippvm/internal/ippvm"
)

// Table maps label names to instruction indices.
type Table struct {
	m *swiss.Map[string, int]
}

// New returns an empty table.
func New() *Table {
	return &Table{m: swiss.NewMap[string, int](8)}
}

// Define records that name resolves to instruction index idx. It fails if
// name was already defined (label redefinition is a semantic error).
func (t *Table) Define(name string, idx int) error {
	if _, ok := t.m.Get(name); ok {
		return ippvm.Semanticf("label redefinition: %s", name)
	}
	t.m.Put(name, idx)
	return nil
}

// Resolve returns the instruction index for name. It fails if name was never
// defined (jump to a nonexistent label is a semantic error).
func (t *Table) Resolve(name string) (int, error) {
	idx, ok := t.m.Get(name)
	if !ok {
		return 0, ippvm.Semanticf("jump to nonexistent label: %s", name)
	}
	return idx, nil
}
