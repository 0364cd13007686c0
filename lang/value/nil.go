package value

// NilType is the type of Nil. Represented as a byte, not struct{}, so that
// Nil can be a typed constant comparable with ==.
type NilType byte

// Nil is the single inhabitant of NilType.
const Nil = NilType(0)

func (NilType) String() string { return "" }
func (NilType) Type() string   { return "nil" }
