package series

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopiesUnmarshalJSON(t *testing.T) {
	type testcase struct {
		name      string
		input     string
		expected  uint64
		wantError bool
	}
	testcases := []testcase{
		{name: "plain integer", input: `7`, expected: 7},
		{name: "zero", input: `0`, expected: 0},
		{name: "max uint64", input: `18446744073709551615`, expected: 18446744073709551615},
		{name: "numeric string rejected", input: `"7"`, wantError: true},
		{name: "float rejected", input: `7.0`, wantError: true},
		{name: "negative rejected", input: `-1`, wantError: true},
		{name: "overflowing integer rejected", input: `18446744073709551616`, wantError: true},
		{name: "null rejected", input: `null`, wantError: true},
		{name: "empty rejected", input: ``, wantError: true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var c Copies
			err := c.UnmarshalJSON([]byte(tc.input))
			if tc.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c.Uint64())
		})
	}
}

func TestCopiesMarshalJSON(t *testing.T) {
	out, err := json.Marshal(Copies(42))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(out))
}

func TestMetadataDecodeRejectsStringCopies(t *testing.T) {
	var m Metadata
	err := json.Unmarshal([]byte(`{"title":"Voyagers","media":"bafybeig","copies":"10"}`), &m)
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Voyagers","media":"bafybeig","copies":10}`), &m))
	require.NotNil(t, m.Copies)
	assert.Equal(t, uint64(10), m.Copies.Uint64())
}

func TestMetadataValidate(t *testing.T) {
	valid := Metadata{Title: "Voyagers", Media: "bafybeig"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Metadata{Media: "bafybeig"}.Validate())
	assert.Error(t, Metadata{Title: "Voyagers"}.Validate())
}
