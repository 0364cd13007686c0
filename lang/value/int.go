package value

import "strconv"

// Int is the type of a signed integer value.
type Int int64

var _ Ordered = Int(0)

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Type() string   { return "int" }

// Cmp implements comparison of two Int values. y must be an Int.
func (i Int) Cmp(y Value) int {
	j := y.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}
