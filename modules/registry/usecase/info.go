package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

func (u *Usecase) GetRegistryInfo(ctx context.Context) (*entity.RegistryInfo, error) {
	info, err := u.registryDg.GetRegistryInfo(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.WithStack(ErrRegistryNotInitialized)
		}
		return nil, errors.Wrap(err, "failed to get registry info")
	}
	return info, nil
}

// InitRegistry writes the collection-level metadata if it does not exist yet.
// A registry that is already initialized is left as is.
func (u *Usecase) InitRegistry(ctx context.Context, info entity.RegistryInfo) error {
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		_, err := dg.GetRegistryInfo(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "failed to get registry info")
		}
		if err := dg.SetRegistryInfo(ctx, &info); err != nil {
			return errors.Wrap(err, "failed to set registry info")
		}
		return nil
	})
	return errors.WithStack(err)
}

// PatchBaseURI replaces the registry base URI. Only the registry owner can
// patch it; a nil baseURI clears it.
func (u *Usecase) PatchBaseURI(ctx context.Context, call Call, baseURI *string) (*entity.RegistryInfo, error) {
	if err := call.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	var patched *entity.RegistryInfo
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		info, err := dg.GetRegistryInfo(ctx)
		if err != nil {
			if errors.Is(err, errs.NotFound) {
				return errors.WithStack(ErrRegistryNotInitialized)
			}
			return errors.Wrap(err, "failed to get registry info")
		}
		if info.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "registry belongs to %s", info.OwnerId)
		}
		info.BaseURI = baseURI
		if err := dg.SetRegistryInfo(ctx, info); err != nil {
			return errors.Wrap(err, "failed to set registry info")
		}
		patched = info
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return patched, nil
}

// Delimiters returns the token, title and edition delimiters clients need to
// parse composed identifiers.
func (u *Usecase) Delimiters() (token, title, edition string) {
	return series.Delimiters()
}
