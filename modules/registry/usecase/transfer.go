package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

// Transfer moves a token to the receiver. The caller must be the current
// owner or hold an approval on the token; when approvalId is non-nil the
// caller's approval must carry that exact id. Any transfer clears all
// approvals on the token.
func (u *Usecase) Transfer(ctx context.Context, call Call, tokenId series.TokenId, receiver series.AccountId, approvalId *uint64) (*entity.Edition, error) {
	if err := call.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if !receiver.Valid() {
		return nil, errors.Wrapf(series.ErrInvalidMetadata, "invalid receiver account id %q", receiver)
	}
	var transferred *entity.Edition
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		edition, err := getEditionTx(ctx, dg, tokenId)
		if err != nil {
			return errors.WithStack(err)
		}
		if edition.OwnerId != call.Caller && !edition.IsApproved(call.Caller, approvalId) {
			return errors.Wrapf(ErrNotOwnerOrApproved, "token %s belongs to %s", tokenId, edition.OwnerId)
		}
		if edition.OwnerId == receiver {
			return errors.Wrapf(ErrSelfTransfer, "token %s already belongs to %s", tokenId, receiver)
		}
		edition.TransferTo(receiver)
		if err := dg.UpdateEdition(ctx, edition); err != nil {
			return errors.Wrap(err, "failed to update edition")
		}
		transferred = edition
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return transferred, nil
}

func getEditionTx(ctx context.Context, dg datagateway.RegistryReaderDataGateway, tokenId series.TokenId) (*entity.Edition, error) {
	edition, err := dg.GetEdition(ctx, tokenId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(ErrTokenNotFound, "token id %s", tokenId)
		}
		return nil, errors.Wrap(err, "failed to get edition")
	}
	return edition, nil
}
