package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

func (u *Usecase) GetSeries(ctx context.Context, seriesId uint64) (*series.Series, error) {
	result, err := u.registryDg.GetSeries(ctx, seriesId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(ErrSeriesNotFound, "series id %d", seriesId)
		}
		return nil, errors.Wrap(err, "failed to get series")
	}
	return result, nil
}

// GetSeriesByTitle resolves a series by its unique title, the public handle
// callers hold before they learn the numeric id.
func (u *Usecase) GetSeriesByTitle(ctx context.Context, title string) (*series.Series, error) {
	result, err := u.registryDg.GetSeriesByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(ErrSeriesNotFound, "series title %q", title)
		}
		return nil, errors.Wrap(err, "failed to get series by title")
	}
	return result, nil
}

// GetSeriesList returns series ordered by id. Use limit = -1 as no limit.
func (u *Usecase) GetSeriesList(ctx context.Context, limit int32, offset int32) ([]*series.Series, error) {
	results, err := u.registryDg.GetSeriesList(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list series")
	}
	return results, nil
}

func (u *Usecase) CountSeries(ctx context.Context) (uint64, error) {
	count, err := u.registryDg.CountSeries(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count series")
	}
	return count, nil
}

// SeriesSupply is the supply position of a single series. Remaining is nil
// for an uncapped series, whose supply is unbounded until capped.
type SeriesSupply struct {
	MintedCount uint64
	Copies      *uint64
	Remaining   *uint64
}

func (u *Usecase) GetSeriesSupply(ctx context.Context, seriesId uint64) (SeriesSupply, error) {
	current, err := u.GetSeries(ctx, seriesId)
	if err != nil {
		return SeriesSupply{}, errors.WithStack(err)
	}
	supply := SeriesSupply{MintedCount: current.MintedCount}
	if current.Metadata.Copies != nil {
		copies := current.Metadata.Copies.Uint64()
		supply.Copies = &copies
		remaining := copies - current.MintedCount
		supply.Remaining = &remaining
	}
	return supply, nil
}

// TotalSupply counts minted editions across every series in the registry.
func (u *Usecase) TotalSupply(ctx context.Context) (uint64, error) {
	count, err := u.registryDg.CountEditions(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count editions")
	}
	return count, nil
}
