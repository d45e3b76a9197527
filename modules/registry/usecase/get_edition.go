package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/samber/lo"
)

// EditionView is an edition joined with its series, with the display title
// and media URIs composed.
type EditionView struct {
	Edition  *entity.Edition
	Series   *series.Series
	Title    string
	MediaURI string
	ExtraURI *string
}

func (u *Usecase) GetEdition(ctx context.Context, tokenId series.TokenId) (*EditionView, error) {
	edition, err := u.registryDg.GetEdition(ctx, tokenId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(ErrTokenNotFound, "token id %s", tokenId)
		}
		return nil, errors.Wrap(err, "failed to get edition")
	}
	return u.composeEditionView(ctx, edition)
}

// GetEditions returns editions across all series, ordered by token id.
// Use limit = -1 as no limit.
func (u *Usecase) GetEditions(ctx context.Context, limit int32, offset int32) ([]*EditionView, error) {
	editions, err := u.registryDg.GetEditions(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list editions")
	}
	return u.composeEditionViews(ctx, editions)
}

func (u *Usecase) GetEditionsBySeries(ctx context.Context, seriesId uint64, limit int32, offset int32) ([]*EditionView, error) {
	// surface a not-found for the series itself rather than an empty list
	if _, err := u.GetSeries(ctx, seriesId); err != nil {
		return nil, errors.WithStack(err)
	}
	editions, err := u.registryDg.GetEditionsBySeries(ctx, seriesId, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list editions by series")
	}
	return u.composeEditionViews(ctx, editions)
}

func (u *Usecase) GetEditionsByOwner(ctx context.Context, ownerId series.AccountId, limit int32, offset int32) ([]*EditionView, error) {
	editions, err := u.registryDg.GetEditionsByOwner(ctx, ownerId, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list editions by owner")
	}
	return u.composeEditionViews(ctx, editions)
}

func (u *Usecase) CountEditionsByOwner(ctx context.Context, ownerId series.AccountId) (uint64, error) {
	count, err := u.registryDg.CountEditionsByOwner(ctx, ownerId)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count editions by owner")
	}
	return count, nil
}

func (u *Usecase) composeEditionViews(ctx context.Context, editions []*entity.Edition) ([]*EditionView, error) {
	// editions are ordered by series id, so the single-entry cache saves a
	// series lookup per edition in the common case
	var cached *series.Series
	var baseURI *string
	if info, err := u.registryDg.GetRegistryInfo(ctx); err == nil {
		baseURI = info.BaseURI
	}
	views := make([]*EditionView, 0, len(editions))
	for _, edition := range editions {
		if cached == nil || cached.Id != edition.SeriesId {
			var err error
			cached, err = getSeriesTx(ctx, u.registryDg, edition.SeriesId)
			if err != nil {
				return nil, errors.WithStack(err)
			}
		}
		views = append(views, newEditionView(edition, cached, baseURI))
	}
	return views, nil
}

func (u *Usecase) composeEditionView(ctx context.Context, edition *entity.Edition) (*EditionView, error) {
	owningSeries, err := getSeriesTx(ctx, u.registryDg, edition.SeriesId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var baseURI *string
	if info, err := u.registryDg.GetRegistryInfo(ctx); err == nil {
		baseURI = info.BaseURI
	}
	return newEditionView(edition, owningSeries, baseURI), nil
}

func newEditionView(edition *entity.Edition, owningSeries *series.Series, baseURI *string) *EditionView {
	view := &EditionView{
		Edition:  edition,
		Series:   owningSeries,
		Title:    series.FormatEditionTitle(owningSeries.Metadata.Title, edition.EditionNumber, owningSeries.EditionCap()),
		MediaURI: composeMediaURI(baseURI, owningSeries.Metadata.Media, edition.AssetId+"."+edition.Filetype),
	}
	if edition.HasExtra {
		view.ExtraURI = lo.ToPtr(composeMediaURI(baseURI, owningSeries.Metadata.Media, edition.AssetId+".json"))
	}
	return view
}

// composeMediaURI joins the optional registry base URI, the series media
// root and the asset file name with single slashes.
func composeMediaURI(baseURI *string, media string, file string) string {
	parts := make([]string, 0, 3)
	if baseURI != nil && *baseURI != "" {
		parts = append(parts, strings.TrimSuffix(*baseURI, "/"))
	}
	parts = append(parts, strings.TrimSuffix(media, "/"), file)
	return strings.Join(parts, "/")
}
