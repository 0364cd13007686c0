package value

import "strconv"

// Float is the type of an IEEE-754 double value.
type Float float64

var _ Ordered = Float(0)

// String renders the value as a lossless hexadecimal float, e.g. "0x1.8p+01",
// matching the textual form mandated for WRITE and round-tripped by
// ParseXML(TypeFloat, ...).
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'x', -1, 64) }
func (f Float) Type() string   { return "float" }

// Cmp implements a three-valued comparison on floats, totally ordered with
// NaN greater than +Inf. y must be a Float.
func (f Float) Cmp(y Value) int {
	g := y.(Float)
	switch {
	case f < g:
		return -1
	case f > g:
		return +1
	case f == g:
		return 0
	}
	// at least one operand is NaN
	if f == f {
		return -1 // g is NaN
	} else if g == g {
		return +1 // f is NaN
	}
	return 0 // both NaN
}
