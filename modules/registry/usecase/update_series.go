package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

// UpdateSeries applies a partial metadata patch and an optional royalty
// overwrite to a series owned by the caller. Media and copies stay untouched
// even when present in the patch; a nil royalty keeps the current table.
func (u *Usecase) UpdateSeries(ctx context.Context, call Call, seriesId uint64, metadata *series.MetadataPatch, royalty *series.Royalty) (*series.Series, error) {
	if err := call.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	var updated *series.Series
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		current, err := getSeriesTx(ctx, dg, seriesId)
		if err != nil {
			return errors.WithStack(err)
		}
		if current.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "series %d belongs to %s", seriesId, current.OwnerId)
		}
		if metadata != nil && metadata.Title != nil && *metadata.Title != current.Metadata.Title {
			_, err := dg.GetSeriesByTitle(ctx, *metadata.Title)
			if err == nil {
				return errors.Wrapf(ErrDuplicateTitle, "title %q", *metadata.Title)
			}
			if !errors.Is(err, errs.NotFound) {
				return errors.Wrap(err, "failed to check title uniqueness")
			}
		}
		before := seriesStorageBytes(current)
		if err := current.ApplyPatch(metadata, royalty); err != nil {
			return errors.WithStack(err)
		}
		if after := seriesStorageBytes(current); after > before {
			if err := u.chargeStorage(call, after-before); err != nil {
				return errors.WithStack(err)
			}
		}
		if err := dg.UpdateSeries(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update series")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return updated, nil
}

// CapSeries irreversibly pins the series copies to its current minted count.
// Capping an already capped series is a no-op.
func (u *Usecase) CapSeries(ctx context.Context, call Call, seriesId uint64) (*series.Series, error) {
	if err := call.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	var capped *series.Series
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		current, err := getSeriesTx(ctx, dg, seriesId)
		if err != nil {
			return errors.WithStack(err)
		}
		if current.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "series %d belongs to %s", seriesId, current.OwnerId)
		}
		current.CapCopies()
		if err := dg.UpdateSeries(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update series")
		}
		capped = current
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return capped, nil
}

// DeleteSeries removes a series that has no minted editions.
func (u *Usecase) DeleteSeries(ctx context.Context, call Call, seriesId uint64) error {
	if err := call.Validate(); err != nil {
		return errors.WithStack(err)
	}
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		current, err := getSeriesTx(ctx, dg, seriesId)
		if err != nil {
			return errors.WithStack(err)
		}
		if current.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "series %d belongs to %s", seriesId, current.OwnerId)
		}
		if current.MintedCount > 0 {
			return errors.Wrapf(ErrSeriesNotEmpty, "series %d has %d minted editions", seriesId, current.MintedCount)
		}
		if err := dg.DeleteSeries(ctx, seriesId); err != nil {
			return errors.Wrap(err, "failed to delete series")
		}
		return nil
	})
	return errors.WithStack(err)
}

func getSeriesTx(ctx context.Context, dg datagateway.RegistryReaderDataGateway, seriesId uint64) (*series.Series, error) {
	current, err := dg.GetSeries(ctx, seriesId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(ErrSeriesNotFound, "series id %d", seriesId)
		}
		return nil, errors.Wrap(err, "failed to get series")
	}
	return current, nil
}
