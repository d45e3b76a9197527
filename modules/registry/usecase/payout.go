package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/uint128"
)

// ComputePayout splits a hypothetical sale balance of the token between the
// royalty accounts of its series and the current owner. The registry only
// advises the split; it never moves funds.
func (u *Usecase) ComputePayout(ctx context.Context, tokenId series.TokenId, balance uint128.Uint128, maxLenPayout uint32) (series.Payout, error) {
	edition, err := getEditionTx(ctx, u.registryDg, tokenId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	owningSeries, err := getSeriesTx(ctx, u.registryDg, edition.SeriesId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	payout, err := series.ComputePayout(edition.OwnerId, owningSeries.Royalty, balance, maxLenPayout)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return payout, nil
}
