package decimals

import (
	"math/big"
	"testing"

	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBigInt(t *testing.T) {
	tests := []struct {
		name     string
		amount   any
		decimals uint16
		expected *big.Int
	}{
		{
			name:     "whole units to smallest denomination",
			amount:   decimal.RequireFromString("0.00001"),
			decimals: 24,
			expected: new(big.Int).Exp(big.NewInt(10), big.NewInt(19), nil),
		},
		{
			name:     "string input",
			amount:   "1.5",
			decimals: 2,
			expected: big.NewInt(150),
		},
		{
			name:     "int64 input",
			amount:   int64(42),
			decimals: 0,
			expected: big.NewInt(42),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, tt.expected.Cmp(ToBigInt(tt.amount, tt.decimals)))
		})
	}
}

func TestToUint128(t *testing.T) {
	got, err := ToUint128(decimal.RequireFromString("0.00001"), 24)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(10_000_000_000_000_000_000), got)

	_, err = ToUint128("-1", 0)
	assert.Error(t, err)
}

func TestPowerOfTen(t *testing.T) {
	assert.True(t, PowerOfTen(0).Equal(decimal.NewFromInt(1)))
	assert.True(t, PowerOfTen(3).Equal(decimal.NewFromInt(1000)))
	assert.True(t, PowerOfTen(-2).Equal(decimal.RequireFromString("0.01")))
}
