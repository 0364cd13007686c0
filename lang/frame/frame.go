// Package frame implements the IPPcode22 frame model: the always-present
// global frame (GF), the single temporary frame (TF) that must be explicitly
// created, and the stack of local frames (LF) fed by PUSHFRAME/POPFRAME.
//
// The slot maps are backed by github.com/dolthub/swiss, the same
// generic Swiss-table map the teacher uses for its own Map value type
// (lang/machine/map.go) — a good fit here too, since variable lookup by name
// is the hottest path in the interpreter loop.
package frame

import (
	"github.com/dolthub/swiss"

	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/value"
)

// Kind identifies one of the three frame kinds a variable reference may
// target.
type Kind int

const (
	GF Kind = iota
	LF
	TF
)

func (k Kind) String() string {
	switch k {
	case GF:
		return "GF"
	case LF:
		return "LF"
	case TF:
		return "TF"
	default:
		return "?"
	}
}

type slots = swiss.Map[string, value.Value]

func newSlots() *slots { return swiss.NewMap[string, value.Value](8) }

// Set owns the three frame kinds' storage: the global frame, the current
// temporary frame (nil when undefined), and the stack of pushed local
// frames.
type Set struct {
	global *slots
	temp   *slots
	locals []*slots
}

// New returns a Set with an empty, always-defined global frame and an
// undefined temporary frame and local-frame stack.
func New() *Set {
	return &Set{global: newSlots()}
}

// CreateFrame creates a fresh, empty temporary frame, discarding any
// previous one.
func (s *Set) CreateFrame() { s.temp = newSlots() }

// PushFrame moves the current temporary frame onto the local-frame stack,
// making it the new LF, and undefines TF. It is an error to push when TF is
// undefined.
func (s *Set) PushFrame() error {
	if s.temp == nil {
		return ippvm.FrameNotFoundf("PUSHFRAME: temporary frame is not defined")
	}
	s.locals = append(s.locals, s.temp)
	s.temp = nil
	return nil
}

// PopFrame moves the top local frame into TF (clobbering any previous TF)
// and exposes the new top of the stack (if any) as LF. It is an error to pop
// an empty local-frame stack.
func (s *Set) PopFrame() error {
	if len(s.locals) == 0 {
		return ippvm.FrameNotFoundf("POPFRAME: local frame stack is empty")
	}
	n := len(s.locals) - 1
	s.temp = s.locals[n]
	s.locals = s.locals[:n]
	return nil
}

// frameOf resolves kind to its backing slot map, or an error if that frame is
// currently undefined.
func (s *Set) frameOf(kind Kind) (*slots, error) {
	switch kind {
	case GF:
		return s.global, nil
	case TF:
		if s.temp == nil {
			return nil, ippvm.FrameNotFoundf("temporary frame is not defined")
		}
		return s.temp, nil
	case LF:
		if len(s.locals) == 0 {
			return nil, ippvm.FrameNotFoundf("local frame stack is empty")
		}
		return s.locals[len(s.locals)-1], nil
	default:
		return nil, ippvm.Internalf("unknown frame kind %v", kind)
	}
}

// Define creates a new, uninitialized slot for name in the given frame. It
// fails if the frame is undefined or the name is already defined in it
// (variable redefinition is a semantic error, see invariant 4).
func (s *Set) Define(kind Kind, name string) error {
	f, err := s.frameOf(kind)
	if err != nil {
		return err
	}
	if _, ok := f.Get(name); ok {
		return ippvm.Semanticf("variable redefinition: %s@%s", kind, name)
	}
	f.Put(name, nil)
	return nil
}

// Update replaces the value held by an already-defined slot. It fails if the
// frame is undefined or the variable was never defined.
func (s *Set) Update(kind Kind, name string, v value.Value) error {
	f, err := s.frameOf(kind)
	if err != nil {
		return err
	}
	if _, ok := f.Get(name); !ok {
		return ippvm.VarNotFoundf("accessing nonexistent variable: %s@%s", kind, name)
	}
	f.Put(name, v)
	return nil
}

// ReadStrict returns the value held by name in the given frame, failing if
// the frame is undefined, the variable was never defined, or it is defined
// but uninitialized.
func (s *Set) ReadStrict(kind Kind, name string) (value.Value, error) {
	f, err := s.frameOf(kind)
	if err != nil {
		return nil, err
	}
	v, ok := f.Get(name)
	if !ok {
		return nil, ippvm.VarNotFoundf("accessing nonexistent variable: %s@%s", kind, name)
	}
	if v == nil {
		return nil, ippvm.MissingValuef("accessing uninitialized variable: %s@%s", kind, name)
	}
	return v, nil
}

// ReadLenient is like ReadStrict but does not fail on an uninitialized slot:
// it reports initialized=false instead. Used by TYPE, which must render the
// empty type name for an uninitialized operand.
func (s *Set) ReadLenient(kind Kind, name string) (v value.Value, initialized bool, err error) {
	f, err := s.frameOf(kind)
	if err != nil {
		return nil, false, err
	}
	got, ok := f.Get(name)
	if !ok {
		return nil, false, ippvm.VarNotFoundf("accessing nonexistent variable: %s@%s", kind, name)
	}
	return got, got != nil, nil
}

// CountInitialized returns the number of initialized slots across the
// global frame, the current temporary frame (if any) and the current top of
// the local-frame stack (if any) — the three frames "live" at this point in
// execution, used by the statistics collector's `vars` metric.
func (s *Set) CountInitialized() int {
	n := countInitialized(s.global)
	if s.temp != nil {
		n += countInitialized(s.temp)
	}
	if len(s.locals) > 0 {
		n += countInitialized(s.locals[len(s.locals)-1])
	}
	return n
}

func countInitialized(m *slots) int {
	n := 0
	m.Iter(func(_ string, v value.Value) (stop bool) {
		if v != nil {
			n++
		}
		return false
	})
	return n
}
