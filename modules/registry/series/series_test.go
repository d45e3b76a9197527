package series

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata(copies *Copies) Metadata {
	return Metadata{
		Title:  "Voyagers",
		Media:  "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		Copies: copies,
	}
}

func TestNewSeries(t *testing.T) {
	type testcase struct {
		name          string
		ownerId       AccountId
		metadata      Metadata
		spec          AssetSpec
		royalty       Royalty
		expectedError error
	}
	testcases := []testcase{
		{
			name:     "valid",
			ownerId:  "alice.test",
			metadata: testMetadata(copiesOf(10)),
			spec:     AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			royalty:  Royalty{"bob.test": 1000},
		},
		{
			name:          "empty title",
			ownerId:       "alice.test",
			metadata:      Metadata{Media: "bafybeig"},
			spec:          AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			expectedError: ErrInvalidMetadata,
		},
		{
			name:          "empty media",
			ownerId:       "alice.test",
			metadata:      Metadata{Title: "Voyagers"},
			spec:          AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			expectedError: ErrInvalidMetadata,
		},
		{
			name:          "invalid owner account",
			ownerId:       "NOT-an-account",
			metadata:      testMetadata(copiesOf(10)),
			spec:          AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			expectedError: ErrInvalidMetadata,
		},
		{
			name:          "royalty above denominator",
			ownerId:       "alice.test",
			metadata:      testMetadata(copiesOf(10)),
			spec:          AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			royalty:       Royalty{"bob.test": 6000, "carol.test": 5000},
			expectedError: ErrRoyaltyOverflow,
		},
		{
			name:          "single royalty share above denominator",
			ownerId:       "alice.test",
			metadata:      testMetadata(copiesOf(10)),
			spec:          AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			royalty:       Royalty{"bob.test": 10001},
			expectedError: ErrRoyaltyOverflow,
		},
		{
			name:          "royalty with invalid account id",
			ownerId:       "alice.test",
			metadata:      testMetadata(copiesOf(10)),
			spec:          AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
			royalty:       Royalty{"!!": 1000},
			expectedError: ErrInvalidMetadata,
		},
		{
			name:          "distribution mismatch surfaces",
			ownerId:       "alice.test",
			metadata:      testMetadata(copiesOf(10)),
			spec:          AssetSpec{AssetCount: 2, Filetypes: []string{"jpg"}, Distribution: []AssetEntry{{AssetId: "a", Supply: 4}, {AssetId: "b", Supply: 4}}},
			expectedError: ErrAssetDistributionMismatch,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSeries(tc.ownerId, tc.metadata, tc.spec, tc.royalty, "1")
			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError), "expected %v, got %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.ownerId, s.OwnerId)
				assert.Zero(t, s.MintedCount)
			}
		})
	}
}

func TestSeriesInvariantSupplyTracksMints(t *testing.T) {
	s, err := NewSeries("alice.test", testMetadata(copiesOf(10)), AssetSpec{
		AssetCount: 2,
		Filetypes:  []string{"jpg"},
		Distribution: []AssetEntry{
			{AssetId: "cat", Supply: 7},
			{AssetId: "dog", Supply: 3},
		},
	}, nil, "cat")
	require.NoError(t, err)

	copies := s.Metadata.Copies.Uint64()
	for i := uint64(0); i < copies; i++ {
		remaining, ok := s.Distribution.Remaining()
		require.True(t, ok)
		assert.Equal(t, copies-s.MintedCount, remaining)

		editionNumber, _, err := s.NextEdition()
		require.NoError(t, err)
		assert.Equal(t, i+1, editionNumber)
	}

	// the (N+1)-th mint after exactly N copies fails with the cap error
	_, _, err = s.NextEdition()
	assert.True(t, errors.Is(err, ErrSupplyExhausted))
}

func TestSeriesApplyPatchNeverTouchesMediaOrCopies(t *testing.T) {
	s, err := NewSeries("alice.test", testMetadata(copiesOf(10)), AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, Royalty{"bob.test": 500}, "1")
	require.NoError(t, err)

	patch := &MetadataPatch{
		Title:       lo.ToPtr("Voyagers II"),
		Description: lo.ToPtr("second run"),
		Media:       lo.ToPtr("other-media"),
		Copies:      copiesOf(9999),
	}
	require.NoError(t, s.ApplyPatch(patch, &Royalty{"carol.test": 100}))

	assert.Equal(t, "Voyagers II", s.Metadata.Title)
	assert.Equal(t, "second run", *s.Metadata.Description)
	// media and copies stay untouched even when supplied in the patch
	assert.Equal(t, testMetadata(nil).Media, s.Metadata.Media)
	assert.Equal(t, uint64(10), s.Metadata.Copies.Uint64())
	// royalty is an overwrite, not a merge
	assert.Equal(t, Royalty{"carol.test": 100}, s.Royalty)
}

func TestSeriesApplyPatchClearsDescription(t *testing.T) {
	s, err := NewSeries("alice.test", Metadata{
		Title:       "Voyagers",
		Media:       "bafybeig",
		Copies:      copiesOf(10),
		Description: lo.ToPtr("original"),
	}, AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, nil, "1")
	require.NoError(t, err)

	require.NoError(t, s.ApplyPatch(&MetadataPatch{}, nil))
	assert.Nil(t, s.Metadata.Description)
}

func TestSeriesApplyPatchRejectsEmptyTitle(t *testing.T) {
	s, err := NewSeries("alice.test", testMetadata(copiesOf(10)), AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, nil, "1")
	require.NoError(t, err)

	err = s.ApplyPatch(&MetadataPatch{Title: lo.ToPtr("")}, nil)
	assert.True(t, errors.Is(err, ErrInvalidMetadata))
}

func TestSeriesCapCopiesIdempotent(t *testing.T) {
	s, err := NewSeries("alice.test", testMetadata(nil), AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, nil, "1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := s.NextEdition()
		require.NoError(t, err)
	}

	s.CapCopies()
	require.NotNil(t, s.Metadata.Copies)
	assert.Equal(t, uint64(3), s.Metadata.Copies.Uint64())
	assert.True(t, s.Capped)

	// capping twice observes the same value
	s.CapCopies()
	assert.Equal(t, uint64(3), s.Metadata.Copies.Uint64())

	_, _, err = s.NextEdition()
	assert.True(t, errors.Is(err, ErrSupplyExhausted))
}

func TestSeriesEditionCap(t *testing.T) {
	s, err := NewSeries("alice.test", testMetadata(nil), AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}}, nil, "1")
	require.NoError(t, err)

	// uncapped series use the minted count of the open run
	_, _, err = s.NextEdition()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.EditionCap())

	s.CapCopies()
	assert.Equal(t, uint64(1), s.EditionCap())
}

func TestAccountIdValid(t *testing.T) {
	valid := []string{"alice.test", "bob", "sub.account.near", "a-b_c.d1", "1234"}
	for _, s := range valid {
		assert.True(t, AccountId(s).Valid(), "expected %q to be valid", s)
	}
	invalid := []string{"", "a", "Alice.test", "double..dot", ".leading", "trailing.", "-dash", "dash-", "has space", strings.Repeat("a", 65)}
	for _, s := range invalid {
		assert.False(t, AccountId(s).Valid(), "expected %q to be invalid", s)
	}
}
