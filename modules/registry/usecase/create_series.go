package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

type CreateSeriesParams struct {
	Metadata   series.Metadata
	Royalty    series.Royalty
	AssetSpec  series.AssetSpec
	CoverAsset string
}

// CreateSeries registers a new series owned by the caller and returns it with
// its assigned id. Titles are unique across the registry.
func (u *Usecase) CreateSeries(ctx context.Context, call Call, params CreateSeriesParams) (*series.Series, error) {
	if err := call.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	newSeries, err := series.NewSeries(call.Caller, params.Metadata, params.AssetSpec, params.Royalty, params.CoverAsset)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	newSeries.CreatedAt = time.Now().UTC()

	if err := u.chargeStorage(call, seriesStorageBytes(newSeries)); err != nil {
		return nil, errors.WithStack(err)
	}

	err = u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		_, err := dg.GetSeriesByTitle(ctx, newSeries.Metadata.Title)
		if err == nil {
			return errors.Wrapf(ErrDuplicateTitle, "title %q", newSeries.Metadata.Title)
		}
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "failed to check title uniqueness")
		}
		id, err := dg.CreateSeries(ctx, newSeries)
		if err != nil {
			return errors.Wrap(err, "failed to create series")
		}
		newSeries.Id = id
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newSeries, nil
}
