package program

import (
	"github.com/ipp22/ippvm/lang/frame"
	"github.com/ipp22/ippvm/lang/value"
)

// VarRef is a variable reference (frame_kind, name), used both as an
// assignment target (a `var` argument) and, through Symb, as a readable
// operand.
type VarRef struct {
	Kind frame.Kind
	Name string
}

// Symb is a readable instruction operand: either a variable reference,
// dereferenced at execute time with strict initialization, or a literal
// value — the sum type described in DESIGN NOTES (§9), replacing the
// reference implementation's inheritance-based Symb/Constant/Variable
// hierarchy.
type Symb interface {
	// Resolve returns the operand's value, failing with a variable/frame/
	// initialization error if it is an uninitialized or undefined variable.
	Resolve(fs *frame.Set) (value.Value, error)
	// TypeName returns the operand's IPPcode22 type name, or "" if it is an
	// uninitialized variable. Used by TYPE, which must not fail on an
	// uninitialized operand.
	TypeName(fs *frame.Set) (string, error)
}

var (
	_ Symb = VarRef{}
	_ Symb = Lit{}
)

func (v VarRef) Resolve(fs *frame.Set) (value.Value, error) { return fs.ReadStrict(v.Kind, v.Name) }

func (v VarRef) TypeName(fs *frame.Set) (string, error) {
	val, initialized, err := fs.ReadLenient(v.Kind, v.Name)
	if err != nil {
		return "", err
	}
	if !initialized {
		return "", nil
	}
	return val.Type(), nil
}

// Lit is a typed literal operand, parsed once at load time.
type Lit struct {
	Value value.Value
}

func (l Lit) Resolve(*frame.Set) (value.Value, error) { return l.Value, nil }
func (l Lit) TypeName(*frame.Set) (string, error)     { return l.Value.Type(), nil }
