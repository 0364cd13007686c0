package value

import (
	"strconv"
	"strings"
)

// String is the type of a text string: a sequence of Unicode scalar values.
type String string

var _ Ordered = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }

// Cmp performs lexicographic comparison by Unicode code point. y must be a
// String.
func (s String) Cmp(y Value) int { return strings.Compare(string(s), string(y.(String))) }

// DecodeEscapes expands every `\ddd` (exactly three decimal digits) escape in
// raw to the rune with that code point, leaving everything else untouched.
// The scan is deterministic and total: a lone backslash not followed by three
// decimal digits passes through literally, matching the XML source's escape
// convention for '#', '\' and whitespace characters.
func DecodeEscapes(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	src := raw
	for len(src) > 0 {
		i := strings.IndexByte(src, '\\')
		if i < 0 {
			b.WriteString(src)
			break
		}
		b.WriteString(src[:i])
		src = src[i:]

		if len(src) >= 4 && isDecimalDigits(src[1:4]) {
			code, err := strconv.Atoi(src[1:4])
			if err == nil {
				b.WriteRune(rune(code))
				src = src[4:]
				continue
			}
		}
		b.WriteByte('\\')
		src = src[1:]
	}
	return b.String()
}

func isDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// EncodeEscapes is the inverse of DecodeEscapes: it replaces '\\', '#' and
// every rune with code point 0-32 (control characters and the space) with
// its three-decimal-digit escape, as required for a string to round-trip
// through ParseXML(TypeString, ...). Other runes, including whitespace or
// non-printable runes above code point 32, are written as is.
func EncodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\\' || r == '#' || r <= ' ' {
			fmtEscape(&b, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fmtEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	s := strconv.Itoa(int(r))
	for i := len(s); i < 3; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// Runes returns the string's code points, used by instructions that index a
// string by code-point position (STRI2INT, GETCHAR, SETCHAR).
func (s String) Runes() []rune { return []rune(s) }
