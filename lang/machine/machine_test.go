package machine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/loader"
	"github.com/ipp22/ippvm/lang/machine"
)

func run(t *testing.T, src string) (stdout string, code int, err error) {
	t.Helper()
	p, lerr := loader.Load(strings.NewReader(src))
	require.NoError(t, lerr)

	var out bytes.Buffer
	m := &machine.Machine{Stdout: &out}
	code, err = m.Run(context.Background(), p.Instructions, p.Labels)
	return out.String(), code, err
}

func TestMoveWriteRoundTrip(t *testing.T) {
	out, code, err := run(t, `<program language="IPPcode22">
  <instruction order="1" opcode="defvar"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="move"><arg1 type="var">GF@x</arg1><arg2 type="string">hello</arg2></instruction>
  <instruction order="3" opcode="write"><arg1 type="var">GF@x</arg1></instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello", out)
}

func TestLoopCountsToThree(t *testing.T) {
	out, code, err := run(t, `<program language="IPPcode22">
  <instruction order="1" opcode="defvar"><arg1 type="var">GF@i</arg1></instruction>
  <instruction order="2" opcode="defvar"><arg1 type="var">GF@cond</arg1></instruction>
  <instruction order="3" opcode="move"><arg1 type="var">GF@i</arg1><arg2 type="int">0</arg2></instruction>
  <instruction order="4" opcode="label"><arg1 type="label">loop</arg1></instruction>
  <instruction order="5" opcode="write"><arg1 type="var">GF@i</arg1></instruction>
  <instruction order="6" opcode="add"><arg1 type="var">GF@i</arg1><arg2 type="var">GF@i</arg2><arg3 type="int">1</arg3></instruction>
  <instruction order="7" opcode="lt"><arg1 type="var">GF@cond</arg1><arg2 type="var">GF@i</arg2><arg3 type="int">3</arg3></instruction>
  <instruction order="8" opcode="jumpifeq"><arg1 type="label">loop</arg1><arg2 type="var">GF@cond</arg2><arg3 type="bool">true</arg3></instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "012", out)
}

func TestCreateframePushPopLifecycle(t *testing.T) {
	out, code, err := run(t, `<program language="IPPcode22">
  <instruction order="1" opcode="createframe"></instruction>
  <instruction order="2" opcode="defvar"><arg1 type="var">TF@x</arg1></instruction>
  <instruction order="3" opcode="move"><arg1 type="var">TF@x</arg1><arg2 type="string">tf</arg2></instruction>
  <instruction order="4" opcode="pushframe"></instruction>
  <instruction order="5" opcode="write"><arg1 type="var">LF@x</arg1></instruction>
  <instruction order="6" opcode="popframe"></instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "tf", out)
}

func TestUninitializedVariableIsMissingValue(t *testing.T) {
	_, _, err := run(t, `<program language="IPPcode22">
  <instruction order="1" opcode="defvar"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="write"><arg1 type="var">GF@x</arg1></instruction>
</program>`)
	require.Error(t, err)
	assert.Equal(t, ippvm.MissingValueErr, err.(*ippvm.Error).Code)
}

func TestCallReturn(t *testing.T) {
	out, code, err := run(t, `<program language="IPPcode22">
  <instruction order="1" opcode="call"><arg1 type="label">greet</arg1></instruction>
  <instruction order="2" opcode="write"><arg1 type="string">-after</arg1></instruction>
  <instruction order="3" opcode="exit"><arg1 type="int">0</arg1></instruction>
  <instruction order="4" opcode="label"><arg1 type="label">greet</arg1></instruction>
  <instruction order="5" opcode="write"><arg1 type="string">hi</arg1></instruction>
  <instruction order="6" opcode="return"></instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hi-after", out)
}

func TestExitSetsCode(t *testing.T) {
	_, code, err := run(t, `<program language="IPPcode22">
  <instruction order="1" opcode="exit"><arg1 type="int">7</arg1></instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}
