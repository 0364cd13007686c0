// Package value implements the IPPcode22 value and type system: the five
// value variants (Int, Float, Bool, String, Nil), their textual rendering for
// WRITE, and their parsing from both the XML source and interpreter input for
// READ.
package value

// Value is the interface implemented by every IPPcode22 runtime value.
type Value interface {
	// String renders the value the way WRITE does: decimal for Int, lossless
	// hexadecimal float for Float, "true"/"false" for Bool, verbatim for
	// String, and the empty string for Nil.
	String() string

	// Type returns the IPPcode22 type name: "int", "float", "bool", "string"
	// or "nil".
	Type() string
}

// Ordered is implemented by value types that support LT/GT ordering.
type Ordered interface {
	Value
	// Cmp returns negative, zero or positive depending on whether the
	// receiver is less than, equal to, or greater than y. Both operands must
	// be of the same concrete type; callers are responsible for the
	// same-type check (see order and equal in lang/machine/ops.go).
	Cmp(y Value) int
}

var (
	_ Value = Int(0)
	_ Value = Float(0)
	_ Value = Bool(false)
	_ Value = String("")
	_ Value = Nil
)
