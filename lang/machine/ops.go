package machine

import (
	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/value"
)

// asInt, asFloat, asBool and asString narrow a resolved operand to its
// expected concrete type, reporting an operand-type error (check 4 of the
// mandatory ordering, §7) rather than panicking on a failed assertion.

func asInt(v value.Value) (value.Int, error) {
	n, ok := v.(value.Int)
	if !ok {
		return 0, ippvm.OperandTypef("expected int operand, got %s", v.Type())
	}
	return n, nil
}

func asFloat(v value.Value) (value.Float, error) {
	f, ok := v.(value.Float)
	if !ok {
		return 0, ippvm.OperandTypef("expected float operand, got %s", v.Type())
	}
	return f, nil
}

func asBool(v value.Value) (value.Bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, ippvm.OperandTypef("expected bool operand, got %s", v.Type())
	}
	return b, nil
}

func asString(v value.Value) (value.String, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", ippvm.OperandTypef("expected string operand, got %s", v.Type())
	}
	return s, nil
}

// arith evaluates ADD/SUB/MUL/IDIV/DIV. x and y must already be resolved
// operand values.
func arith(op rune, x, y value.Value) (value.Value, error) {
	switch op {
	case 'i': // IDIV
		a, err := asInt(x)
		if err != nil {
			return nil, err
		}
		b, err := asInt(y)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, ippvm.WrongValuef("IDIV: division by zero")
		}
		return a / b, nil
	case 'd': // DIV
		a, err := asFloat(x)
		if err != nil {
			return nil, err
		}
		b, err := asFloat(y)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, ippvm.WrongValuef("DIV: division by zero")
		}
		return a / b, nil
	}

	switch a := x.(type) {
	case value.Int:
		b, err := asInt(y)
		if err != nil {
			return nil, err
		}
		switch op {
		case '+':
			return a + b, nil
		case '-':
			return a - b, nil
		case '*':
			return a * b, nil
		}
	case value.Float:
		b, err := asFloat(y)
		if err != nil {
			return nil, err
		}
		switch op {
		case '+':
			return a + b, nil
		case '-':
			return a - b, nil
		case '*':
			return a * b, nil
		}
	default:
		return nil, ippvm.OperandTypef("expected int or float operand, got %s", x.Type())
	}
	panic("unreachable")
}

// order evaluates LT/GT: same non-Nil type required, Bool result.
func order(less bool, x, y value.Value) (value.Bool, error) {
	if x.Type() == "nil" || y.Type() == "nil" {
		return false, ippvm.OperandTypef("LT/GT operands must not be nil")
	}
	if x.Type() != y.Type() {
		return false, ippvm.OperandTypef("LT/GT operands must share a type, got %s and %s", x.Type(), y.Type())
	}
	ox, ok := x.(value.Ordered)
	if !ok {
		return false, ippvm.OperandTypef("type %s does not support ordering", x.Type())
	}
	cmp := ox.Cmp(y)
	if less {
		return value.Bool(cmp < 0), nil
	}
	return value.Bool(cmp > 0), nil
}

// equal evaluates EQ (and the JUMPIFEQ/JUMPIFNEQ comparison): Nil-aware,
// same-type otherwise.
func equal(x, y value.Value) (value.Bool, error) {
	xNil, yNil := x.Type() == "nil", y.Type() == "nil"
	if xNil || yNil {
		return value.Bool(xNil && yNil), nil
	}
	if x.Type() != y.Type() {
		return false, ippvm.OperandTypef("EQ operands must share a type, got %s and %s", x.Type(), y.Type())
	}
	ox := x.(value.Ordered)
	return value.Bool(ox.Cmp(y) == 0), nil
}

// validUnicodeScalar reports whether n is a valid Unicode scalar value: in
// range and not a surrogate code point.
func validUnicodeScalar(n int64) bool {
	if n < 0 || n > 0x10FFFF {
		return false
	}
	return n < 0xD800 || n > 0xDFFF
}
