package series

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePayout(t *testing.T) {
	type testcase struct {
		name          string
		ownerId       AccountId
		royalty       Royalty
		balance       uint128.Uint128
		maxLenPayout  uint32
		expected      Payout
		expectedError error
	}
	testcases := []testcase{
		{
			name:         "no royalty, owner takes all",
			ownerId:      "alice.test",
			royalty:      nil,
			balance:      uint128.From64(1000),
			maxLenPayout: 10,
			expected:     Payout{"alice.test": uint128.From64(1000)},
		},
		{
			name:         "ten percent cut",
			ownerId:      "alice.test",
			royalty:      Royalty{"artist.test": 1000},
			balance:      uint128.From64(1000),
			maxLenPayout: 10,
			expected: Payout{
				"artist.test": uint128.From64(100),
				"alice.test":  uint128.From64(900),
			},
		},
		{
			name:         "owner absorbs the rounding remainder",
			ownerId:      "alice.test",
			royalty:      Royalty{"artist.test": 3333, "dev.test": 3333},
			balance:      uint128.From64(100),
			maxLenPayout: 10,
			expected: Payout{
				"artist.test": uint128.From64(33),
				"dev.test":    uint128.From64(33),
				"alice.test":  uint128.From64(34),
			},
		},
		{
			name:         "royalty to the owner folds into the owner share",
			ownerId:      "alice.test",
			royalty:      Royalty{"alice.test": 2500, "artist.test": 2500},
			balance:      uint128.From64(1000),
			maxLenPayout: 10,
			expected: Payout{
				"artist.test": uint128.From64(250),
				"alice.test":  uint128.From64(750),
			},
		},
		{
			name:         "whole balance to royalty omits the zero owner share",
			ownerId:      "alice.test",
			royalty:      Royalty{"artist.test": 10000},
			balance:      uint128.From64(500),
			maxLenPayout: 10,
			expected:     Payout{"artist.test": uint128.From64(500)},
		},
		{
			name:         "balance below smallest share leaves everything with the owner",
			ownerId:      "alice.test",
			royalty:      Royalty{"artist.test": 100},
			balance:      uint128.From64(5),
			maxLenPayout: 10,
			expected:     Payout{"alice.test": uint128.From64(5)},
		},
		{
			name:          "too many receivers",
			ownerId:       "alice.test",
			royalty:       Royalty{"a.test": 100, "b.test": 100, "c.test": 100},
			balance:       uint128.From64(10000),
			maxLenPayout:  2,
			expectedError: ErrPayoutTooLong,
		},
		{
			name:          "share multiplication overflow",
			ownerId:       "alice.test",
			royalty:       Royalty{"artist.test": 5000},
			balance:       uint128.Max,
			maxLenPayout:  10,
			expectedError: errs.OverflowUint128,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			payout, err := ComputePayout(tc.ownerId, tc.royalty, tc.balance, tc.maxLenPayout)
			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError), "expected %v, got %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, payout)

			total := uint128.Zero
			for _, share := range payout {
				total = total.Add(share)
			}
			assert.Equal(t, tc.balance, total)
		})
	}
}
