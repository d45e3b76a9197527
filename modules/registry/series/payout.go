package series

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/uint128"
)

// Payout is the advisory split of a sale balance between royalty accounts and
// the current token owner. The registry never moves funds itself.
type Payout map[AccountId]uint128.Uint128

// ComputePayout splits balance across the royalty accounts, paying
// share = balance * bps / 10000 with integer division to every royalty account
// except the owner; the owner receives the rest, so the shares always sum to
// balance exactly. Fails with ErrPayoutTooLong when the number of distinct
// payees exceeds maxLenPayout.
func ComputePayout(ownerId AccountId, royalty Royalty, balance uint128.Uint128, maxLenPayout uint32) (Payout, error) {
	payout := make(Payout, len(royalty)+1)
	paid := uint128.Zero
	for account, bps := range royalty {
		if account == ownerId {
			// the owner's cut is folded into the remainder below
			continue
		}
		share, err := royaltyShare(balance, bps)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		payout[account] = share
		paid = paid.Add(share)
	}

	// owner absorbs the integer-division remainder
	ownerShare := balance.Sub(paid)
	if !ownerShare.IsZero() {
		payout[ownerId] = ownerShare
	}

	if uint32(len(payout)) > maxLenPayout {
		return nil, errors.Wrapf(ErrPayoutTooLong, "payout has %d receivers, max is %d", len(payout), maxLenPayout)
	}
	return payout, nil
}

func royaltyShare(balance uint128.Uint128, bps uint32) (uint128.Uint128, error) {
	product, overflow := balance.MulOverflow(uint128.From64(uint64(bps)))
	if overflow {
		return uint128.Uint128{}, errors.WithStack(errs.OverflowUint128)
	}
	return product.Div64(RoyaltyDenominator), nil
}
