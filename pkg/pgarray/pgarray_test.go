package pgarray_test

import (
	"testing"

	"github.com/estateline/estateline-api/pkg/pgarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "{}", pgarray.Encode(nil))
	assert.Equal(t, "{}", pgarray.Encode([]string{}))
}

func TestEncode_SingleValue(t *testing.T) {
	assert.Equal(t, `{"2BHK"}`, pgarray.Encode([]string{"2BHK"}))
}

func TestEncode_MultipleValues(t *testing.T) {
	got := pgarray.Encode([]string{"Site Visit", "Video Chat"})
	assert.Equal(t, `{"Site Visit","Video Chat"}`, got)
}

func TestEncode_EscapesQuotesAndBackslashes(t *testing.T) {
	got := pgarray.Encode([]string{`3BHK "Premium"`, `a\b`})
	assert.Equal(t, `{"3BHK \"Premium\"","a\\b"}`, got)
}

func TestDecode_Empty(t *testing.T) {
	values, err := pgarray.Decode("{}")
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.NotNil(t, values)
}

func TestDecode_RoundTrip(t *testing.T) {
	inputs := [][]string{
		{"2BHK"},
		{"1BHK", "2BHK", "3BHK"},
		{"Site Visit", "Video Chat"},
		{`with "quotes"`, `with \backslash`},
	}
	for _, in := range inputs {
		values, err := pgarray.Decode(pgarray.Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, values)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, literal := range []string{"2BHK", `{"unterminated}`, `{"a",`} {
		_, err := pgarray.Decode(literal)
		assert.Error(t, err, "literal %q should not decode", literal)
	}
}
