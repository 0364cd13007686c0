package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorSkipsExcluded(t *testing.T) {
	c := New([]Metric{Insts, Hot, Vars})
	c.Observe(1, false, 2)
	c.Observe(2, true, 99) // excluded: LABEL/DPRINT/BREAK
	c.Observe(1, false, 3)

	var b strings.Builder
	require.NoError(t, c.Flush(&b))
	assert.Equal(t, "2\n1\n3\n", b.String())
}

func TestHottestBreaksTiesByLowestOrder(t *testing.T) {
	c := New([]Metric{Hot})
	c.Observe(5, false, 0)
	c.Observe(3, false, 0)
	c.Observe(5, false, 0)
	c.Observe(3, false, 0)

	var b strings.Builder
	require.NoError(t, c.Flush(&b))
	assert.Equal(t, "3\n", b.String())
}

func TestOrderMatchesCallerRequest(t *testing.T) {
	c := New([]Metric{Vars, Insts})
	c.Observe(1, false, 7)

	var b strings.Builder
	require.NoError(t, c.Flush(&b))
	assert.Equal(t, "7\n1\n", b.String())
}
