package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_SortsObjectKeys(t *testing.T) {
	out, err := marshalCanonical(map[string]any{
		"zebra": 1,
		"alpha": 2,
		"mike":  3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"mike":3,"zebra":1}`, string(out))
}

func TestMarshalCanonical_NestedStructures(t *testing.T) {
	out, err := marshalCanonical(map[string]any{
		"trace": []any{
			map[string]any{"seq": int64(1), "action": "feed.refresh"},
		},
		"scenario": "nested",
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario":"nested","trace":[{"action":"feed.refresh","seq":1}]}`,
		string(out))
}

func TestMarshalCanonical_StringEscaping(t *testing.T) {
	out, err := marshalCanonical("line\nbreak \"quoted\" \\slash")
	require.NoError(t, err)
	assert.Equal(t, `"line\nbreak \"quoted\" \\slash"`, string(out))
}

func TestMarshalCanonical_NFCNormalization(t *testing.T) {
	// U+0065 U+0301 (decomposed) must normalize to U+00E9 (composed) so
	// the same logical string always produces the same bytes.
	decomposed := "café"
	composed := "café"

	a, err := marshalCanonical(decomposed)
	require.NoError(t, err)
	b, err := marshalCanonical(composed)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestMarshalCanonical_RejectsFloats(t *testing.T) {
	_, err := marshalCanonical(map[string]any{"x": 1.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are forbidden")
}

func TestMarshalCanonical_RejectsNull(t *testing.T) {
	_, err := marshalCanonical(map[string]any{"x": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null is forbidden")
}

func TestMarshalCanonical_EmptyCollections(t *testing.T) {
	out, err := marshalCanonical(map[string]any{
		"favorites": []string{},
		"followed":  []any{},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"favorites":[],"followed":[]}`, string(out))
}

func TestUTF16Less_SupplementaryPlane(t *testing.T) {
	// U+1D306 encodes as the surrogate pair D834 DF06, which sorts below
	// U+FB01 in UTF-16 order even though its code point is higher. This is
	// where UTF-16 ordering diverges from byte ordering.
	assert.True(t, utf16Less("\U0001D306", "ﬁ"))
	assert.False(t, utf16Less("ﬁ", "\U0001D306"))
}

func TestUTF16Less_PrefixOrdering(t *testing.T) {
	assert.True(t, utf16Less("ab", "abc"))
	assert.False(t, utf16Less("abc", "ab"))
	assert.False(t, utf16Less("ab", "ab"))
}
