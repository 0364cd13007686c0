package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipp22/ippvm/internal/ippvm"
)

func TestTable(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Define("loop", 3))

	idx, err := tbl.Resolve("loop")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	err = tbl.Define("loop", 5)
	require.Error(t, err)
	assert.Equal(t, ippvm.SemanticErr, err.(*ippvm.Error).Code)

	_, err = tbl.Resolve("missing")
	require.Error(t, err)
	assert.Equal(t, ippvm.SemanticErr, err.(*ippvm.Error).Code)
}
