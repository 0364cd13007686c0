package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	v, err := ParseXML(TypeInt, "42")
	require.NoError(t, err)
	assert.Equal(t, Int(42), v)

	v, err = ParseXML(TypeBool, "true")
	require.NoError(t, err)
	assert.Equal(t, True, v)

	v, err = ParseXML(TypeBool, "anything-else")
	require.NoError(t, err)
	assert.Equal(t, False, v)

	v, err = ParseXML(TypeNil, "nil")
	require.NoError(t, err)
	assert.Equal(t, Nil, v)

	v, err = ParseXML(TypeString, "")
	require.NoError(t, err)
	assert.Equal(t, String(""), v)

	v, err = ParseXML(TypeString, `a\035b`)
	require.NoError(t, err)
	assert.Equal(t, String("a#b"), v)

	_, err = ParseXML(TypeFloat, "0x1.8p1")
	require.NoError(t, err)

	_, err = ParseXML("unknown", "x")
	require.Error(t, err)
}

func TestFloatRoundTrip(t *testing.T) {
	f := Float(3.25)
	s := f.String()
	v, err := ParseXML(TypeFloat, s)
	require.NoError(t, err)
	assert.Equal(t, f, v)
}

func TestParseUserInput(t *testing.T) {
	assert.Equal(t, Int(7), ParseUserInput(TypeInt, "7"))
	assert.Equal(t, Int(7), ParseUserInput(TypeInt, "7.9"))
	assert.Equal(t, Nil, ParseUserInput(TypeInt, "xyz"))
	assert.Equal(t, Float(1.5), ParseUserInput(TypeFloat, "1.5"))
	assert.Equal(t, Nil, ParseUserInput(TypeFloat, "xyz"))
	assert.Equal(t, True, ParseUserInput(TypeBool, "TRUE"))
	assert.Equal(t, False, ParseUserInput(TypeBool, "nope"))
	assert.Equal(t, Nil, ParseUserInput(TypeString, ""))
	assert.Equal(t, String("hi"), ParseUserInput(TypeString, "hi"))
}

func TestEscapeRoundTrip(t *testing.T) {
	raw := "a#b\\c \n"
	encoded := EncodeEscapes(raw)
	assert.Equal(t, raw, DecodeEscapes(encoded))
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, Int(1).Cmp(Int(2)))
	assert.Equal(t, 0, String("a").Cmp(String("a")))
	assert.Equal(t, -1, False.Cmp(True))
}
