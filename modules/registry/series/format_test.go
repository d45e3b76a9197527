package series

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIdFromString(t *testing.T) {
	type testcase struct {
		name           string
		input          string
		expectedOutput TokenId
		shouldError    bool
	}
	testcases := []testcase{
		{
			name:  "valid token id",
			input: "42:2",
			expectedOutput: TokenId{
				SeriesId:      42,
				EditionNumber: 2,
			},
			shouldError: false,
		},
		{
			name:           "too many delimiters",
			input:          "1:2:3",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
		{
			name:           "too few delimiters",
			input:          "1",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
		{
			name:           "non-numeric edition",
			input:          "1:a",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
		{
			name:           "non-numeric series",
			input:          "a:1",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
		{
			name:           "empty edition",
			input:          "1:",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
		{
			name:           "empty series",
			input:          ":1",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
		{
			name:           "negative edition",
			input:          "1:-2",
			expectedOutput: TokenId{},
			shouldError:    true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tokenId, err := NewTokenIdFromString(tc.input)
			if tc.shouldError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedIdentifier))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedOutput, tokenId)
			}
		})
	}
}

func TestTokenIdRoundTrip(t *testing.T) {
	tokenId := NewTokenId(7, 13)
	require.Equal(t, "7:13", tokenId.String())

	parsed, err := NewTokenIdFromString(tokenId.String())
	require.NoError(t, err)
	assert.Equal(t, tokenId, parsed)
}

func TestFormatEditionTitle(t *testing.T) {
	assert.Equal(t, "Voyagers — 2/10", FormatEditionTitle("Voyagers", 2, 10))
	assert.Equal(t, "Solo — 1/1", FormatEditionTitle("Solo", 1, 1))
}

func TestDelimiters(t *testing.T) {
	token, title, edition := Delimiters()
	assert.Equal(t, ":", token)
	assert.Equal(t, " — ", title)
	assert.Equal(t, "/", edition)
}
