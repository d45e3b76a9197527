package series

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copiesOf(n uint64) *Copies {
	c := Copies(n)
	return &c
}

func TestNewDistribution(t *testing.T) {
	type testcase struct {
		name          string
		spec          AssetSpec
		copies        *Copies
		expectedSlots []AssetSlot
		expectedError error
	}
	testcases := []testcase{
		{
			name:   "non-generative single asset",
			spec:   AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			copies: copiesOf(100),
			expectedSlots: []AssetSlot{
				{AssetId: "1", SupplyRemaining: 100, Filetype: "jpg"},
			},
		},
		{
			name:   "fully-generative synthesizes one slot per copy",
			spec:   AssetSpec{AssetCount: 3, Filetypes: []string{"png"}},
			copies: copiesOf(3),
			expectedSlots: []AssetSlot{
				{AssetId: "1", SupplyRemaining: 1, Filetype: "png"},
				{AssetId: "2", SupplyRemaining: 1, Filetype: "png"},
				{AssetId: "3", SupplyRemaining: 1, Filetype: "png"},
			},
		},
		{
			name:   "fully-generative with per-asset filetypes",
			spec:   AssetSpec{AssetCount: 2, Filetypes: []string{"jpg", "mp4"}},
			copies: copiesOf(2),
			expectedSlots: []AssetSlot{
				{AssetId: "1", SupplyRemaining: 1, Filetype: "jpg"},
				{AssetId: "2", SupplyRemaining: 1, Filetype: "mp4"},
			},
		},
		{
			name: "semi-generative weighted table",
			spec: AssetSpec{
				AssetCount: 2,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "cat", Supply: 7},
					{AssetId: "dog", Supply: 3},
				},
			},
			copies: copiesOf(10),
			expectedSlots: []AssetSlot{
				{AssetId: "cat", SupplyRemaining: 7, Filetype: "jpg"},
				{AssetId: "dog", SupplyRemaining: 3, Filetype: "jpg"},
			},
		},
		{
			name: "semi-generative sum one below copies",
			spec: AssetSpec{
				AssetCount: 2,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "cat", Supply: 6},
					{AssetId: "dog", Supply: 3},
				},
			},
			copies:        copiesOf(10),
			expectedError: ErrAssetDistributionMismatch,
		},
		{
			name: "semi-generative sum one above copies",
			spec: AssetSpec{
				AssetCount: 2,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "cat", Supply: 8},
					{AssetId: "dog", Supply: 3},
				},
			},
			copies:        copiesOf(10),
			expectedError: ErrAssetDistributionMismatch,
		},
		{
			name: "semi-generative missing table",
			spec: AssetSpec{
				AssetCount: 2,
				Filetypes:  []string{"jpg"},
			},
			copies:        copiesOf(10),
			expectedError: ErrMissingDistribution,
		},
		{
			name: "semi-generative entry count differs from asset count",
			spec: AssetSpec{
				AssetCount: 3,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "cat", Supply: 7},
					{AssetId: "dog", Supply: 3},
				},
			},
			copies:        copiesOf(10),
			expectedError: ErrAssetDistributionMismatch,
		},
		{
			name: "semi-generative empty asset id",
			spec: AssetSpec{
				AssetCount: 2,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "", Supply: 7},
					{AssetId: "dog", Supply: 3},
				},
			},
			copies:        copiesOf(10),
			expectedError: ErrAssetDistributionMismatch,
		},
		{
			name: "non-generative with explicit table",
			spec: AssetSpec{
				AssetCount: 1,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "1", Supply: 100},
				},
			},
			copies:        copiesOf(100),
			expectedError: ErrUnexpectedDistribution,
		},
		{
			name: "fully-generative with explicit table",
			spec: AssetSpec{
				AssetCount: 2,
				Filetypes:  []string{"jpg"},
				Distribution: []AssetEntry{
					{AssetId: "1", Supply: 1},
					{AssetId: "2", Supply: 1},
				},
			},
			copies:        copiesOf(2),
			expectedError: ErrUnexpectedDistribution,
		},
		{
			name:          "filetype count mismatch",
			spec:          AssetSpec{AssetCount: 3, Filetypes: []string{"jpg", "png"}},
			copies:        copiesOf(3),
			expectedError: ErrAssetDistributionMismatch,
		},
		{
			name:          "zero asset count",
			spec:          AssetSpec{Filetypes: []string{"jpg"}},
			copies:        copiesOf(10),
			expectedError: ErrMissingDistribution,
		},
		{
			name:   "uncapped single asset",
			spec:   AssetSpec{AssetCount: 1, Filetypes: []string{"gif"}},
			copies: nil,
			expectedSlots: []AssetSlot{
				{AssetId: "1", SupplyRemaining: 0, Filetype: "gif"},
			},
		},
		{
			name:          "uncapped multi asset",
			spec:          AssetSpec{AssetCount: 3, Filetypes: []string{"gif"}},
			copies:        nil,
			expectedError: ErrAssetDistributionMismatch,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			distribution, err := NewDistribution(tc.spec, tc.copies)
			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError), "expected %v, got %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedSlots, distribution.Slots)
				assert.Equal(t, tc.copies == nil, distribution.Unbounded)
			}
		})
	}
}

func TestDistributionConsumeInTableOrder(t *testing.T) {
	distribution, err := NewDistribution(AssetSpec{
		AssetCount: 2,
		Filetypes:  []string{"jpg"},
		Distribution: []AssetEntry{
			{AssetId: "cat", Supply: 2},
			{AssetId: "dog", Supply: 1},
		},
	}, copiesOf(3))
	require.NoError(t, err)

	assetIds := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		slot, err := distribution.Consume()
		require.NoError(t, err)
		assetIds = append(assetIds, slot.AssetId)
	}
	assert.Equal(t, []string{"cat", "cat", "dog"}, assetIds)

	// exhausted slots stay in the table with zero supply
	assert.Len(t, distribution.Slots, 2)
	remaining, ok := distribution.Remaining()
	require.True(t, ok)
	assert.Zero(t, remaining)

	_, err = distribution.Consume()
	assert.True(t, errors.Is(err, ErrSeriesExhausted))
}

func TestDistributionConsumeFullyGenerativeUnique(t *testing.T) {
	distribution, err := NewDistribution(AssetSpec{AssetCount: 5, Filetypes: []string{"png"}}, copiesOf(5))
	require.NoError(t, err)

	assetIds := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		slot, err := distribution.Consume()
		require.NoError(t, err)
		assetIds = append(assetIds, slot.AssetId)
	}
	// one edition per asset id, no repeats, no omissions
	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5"}, lo.Uniq(assetIds))
}

func TestDistributionConsumeUnbounded(t *testing.T) {
	distribution, err := NewDistribution(AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, nil)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		slot, err := distribution.Consume()
		require.NoError(t, err)
		assert.Equal(t, "1", slot.AssetId)
	}
	_, ok := distribution.Remaining()
	assert.False(t, ok)
}

func TestDistributionExhaust(t *testing.T) {
	distribution, err := NewDistribution(AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, copiesOf(10))
	require.NoError(t, err)

	distribution.Exhaust()
	remaining, ok := distribution.Remaining()
	require.True(t, ok)
	assert.Zero(t, remaining)

	_, err = distribution.Consume()
	assert.True(t, errors.Is(err, ErrSeriesExhausted))
}
