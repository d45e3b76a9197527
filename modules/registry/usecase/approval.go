package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

// Approve grants accountId transfer approval on the token and returns the
// assigned approval id. Ids increase monotonically per token and are never
// reused. The optional msg is an opaque payload stored with the grant; the
// registry never interprets it. Only the token owner can approve.
func (u *Usecase) Approve(ctx context.Context, call Call, tokenId series.TokenId, accountId series.AccountId, msg *string) (uint64, error) {
	if err := call.Validate(); err != nil {
		return 0, errors.WithStack(err)
	}
	if !accountId.Valid() {
		return 0, errors.Wrapf(series.ErrInvalidMetadata, "invalid account id %q", accountId)
	}
	var approvalId uint64
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		edition, err := getEditionTx(ctx, dg, tokenId)
		if err != nil {
			return errors.WithStack(err)
		}
		if edition.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "token %s belongs to %s", tokenId, edition.OwnerId)
		}
		if _, exists := edition.ApprovedAccounts[accountId]; !exists {
			if err := u.chargeStorage(call, approvalStorageBytes(accountId, msg)); err != nil {
				return errors.WithStack(err)
			}
		}
		approvalId = edition.Approve(accountId, msg)
		if err := dg.UpdateEdition(ctx, edition); err != nil {
			return errors.Wrap(err, "failed to update edition")
		}
		return nil
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return approvalId, nil
}

// Revoke removes accountId's approval on the token. Only the token owner can
// revoke. Revoking an account that holds no approval is a no-op.
func (u *Usecase) Revoke(ctx context.Context, call Call, tokenId series.TokenId, accountId series.AccountId) error {
	if err := call.Validate(); err != nil {
		return errors.WithStack(err)
	}
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		edition, err := getEditionTx(ctx, dg, tokenId)
		if err != nil {
			return errors.WithStack(err)
		}
		if edition.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "token %s belongs to %s", tokenId, edition.OwnerId)
		}
		edition.Revoke(accountId)
		if err := dg.UpdateEdition(ctx, edition); err != nil {
			return errors.Wrap(err, "failed to update edition")
		}
		return nil
	})
	return errors.WithStack(err)
}

// RevokeAll removes every approval on the token. Only the token owner can
// revoke.
func (u *Usecase) RevokeAll(ctx context.Context, call Call, tokenId series.TokenId) error {
	if err := call.Validate(); err != nil {
		return errors.WithStack(err)
	}
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		edition, err := getEditionTx(ctx, dg, tokenId)
		if err != nil {
			return errors.WithStack(err)
		}
		if edition.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "token %s belongs to %s", tokenId, edition.OwnerId)
		}
		edition.RevokeAll()
		if err := dg.UpdateEdition(ctx, edition); err != nil {
			return errors.Wrap(err, "failed to update edition")
		}
		return nil
	})
	return errors.WithStack(err)
}

// IsApproved reports whether accountId holds an approval on the token,
// optionally pinned to an exact approval id.
func (u *Usecase) IsApproved(ctx context.Context, tokenId series.TokenId, accountId series.AccountId, approvalId *uint64) (bool, error) {
	edition, err := getEditionTx(ctx, u.registryDg, tokenId)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return edition.IsApproved(accountId, approvalId), nil
}
