package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedTokens_OrderThenFallback(t *testing.T) {
	g := NewFixedTokens("one", "two")
	assert.Equal(t, "one", g.Generate())
	assert.Equal(t, "two", g.Generate())
	assert.Equal(t, "token-3", g.Generate())
	assert.Equal(t, "token-4", g.Generate())

	g.Reset()
	assert.Equal(t, "one", g.Generate())
}

func TestRecorder(t *testing.T) {
	var r Recorder[int]

	_, ok := r.Last()
	require.False(t, ok)

	r.Record(1)
	r.Record(2)

	assert.Equal(t, []int{1, 2}, r.States())
	assert.Equal(t, 2, r.Len())
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 2, last)

	// States returns a copy, not the live slice.
	states := r.States()
	states[0] = 99
	assert.Equal(t, []int{1, 2}, r.States())
}
