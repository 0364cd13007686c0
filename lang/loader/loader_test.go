package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/program"
)

func TestLoadSortsByOrder(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode22">
  <instruction order="2" opcode="createframe">
  </instruction>
  <instruction order="1" opcode="defvar">
    <arg1 type="var">GF@x</arg1>
  </instruction>
  <instruction order="5" opcode="label">
    <arg1 type="label">loop</arg1>
  </instruction>
</program>`

	p, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Instructions, 3)
	assert.Equal(t, program.DEFVAR, p.Instructions[0].Op)
	assert.Equal(t, program.CREATEFRAME, p.Instructions[1].Op)
	assert.Equal(t, program.LABEL, p.Instructions[2].Op)

	idx, err := p.Labels.Resolve("loop")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestLoadRejectsWrongLanguage(t *testing.T) {
	src := `<program language="bogus"></program>`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ippvm.XMLStructureErr, err.(*ippvm.Error).Code)
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	src := `<program language="IPPcode22"><instruction order="1" opcode="break">`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ippvm.XMLFormatErr, err.(*ippvm.Error).Code)
}

func TestLoadRejectsUnknownOpcode(t *testing.T) {
	src := `<program language="IPPcode22">
  <instruction order="1" opcode="frobnicate"></instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ippvm.XMLStructureErr, err.(*ippvm.Error).Code)
}

func TestLoadRejectsWrongArity(t *testing.T) {
	src := `<program language="IPPcode22">
  <instruction order="1" opcode="move">
    <arg1 type="var">GF@x</arg1>
  </instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ippvm.XMLStructureErr, err.(*ippvm.Error).Code)
}

func TestLoadRejectsDuplicateOrder(t *testing.T) {
	src := `<program language="IPPcode22">
  <instruction order="1" opcode="break"></instruction>
  <instruction order="1" opcode="break"></instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Equal(t, ippvm.XMLStructureErr, err.(*ippvm.Error).Code)
}

func TestLoadParsesLiteralAndVarSymb(t *testing.T) {
	src := `<program language="IPPcode22">
  <instruction order="1" opcode="add">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">41</arg2>
    <arg3 type="var">LF@y</arg3>
  </instruction>
</program>`
	p, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Instructions, 1)
	args := p.Instructions[0].Args
	require.Len(t, args, 3)
	assert.Equal(t, program.KindVar, args[0].Kind)
	assert.Equal(t, "x", args[0].Var.Name)

	lit, ok := args[1].Symb.(program.Lit)
	require.True(t, ok)
	assert.Equal(t, "41", lit.Value.String())

	ref, ok := args[2].Symb.(program.VarRef)
	require.True(t, ok)
	assert.Equal(t, "y", ref.Name)
}
