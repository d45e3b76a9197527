package postgres

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/repository/postgres/gen"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ datagateway.RegistryDataGateway = (*Repository)(nil)

// normalizeLimit maps the datagateway's limit = -1 convention to an effectively
// unbounded SQL LIMIT.
func normalizeLimit(limit int32) int32 {
	if limit < 0 {
		return math.MaxInt32
	}
	return limit
}

func (r *Repository) GetSeries(ctx context.Context, seriesId uint64) (*series.Series, error) {
	model, err := r.queries.GetSeries(ctx, int64(seriesId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	result, err := mapSeriesModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map series model to type")
	}
	return result, nil
}

func (r *Repository) GetSeriesByTitle(ctx context.Context, title string) (*series.Series, error) {
	model, err := r.queries.GetSeriesByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	result, err := mapSeriesModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map series model to type")
	}
	return result, nil
}

func (r *Repository) GetSeriesList(ctx context.Context, limit int32, offset int32) ([]*series.Series, error) {
	models, err := r.queries.GetSeriesList(ctx, gen.GetSeriesListParams{
		Limit:  normalizeLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	results := make([]*series.Series, 0, len(models))
	for _, model := range models {
		result, err := mapSeriesModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map series model to type")
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Repository) CountSeries(ctx context.Context) (uint64, error) {
	count, err := r.queries.CountSeries(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return uint64(count), nil
}

func (r *Repository) CountEditions(ctx context.Context) (uint64, error) {
	count, err := r.queries.CountEditions(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return uint64(count), nil
}

func (r *Repository) GetEdition(ctx context.Context, tokenId series.TokenId) (*entity.Edition, error) {
	model, err := r.queries.GetEdition(ctx, gen.GetEditionParams{
		SeriesID:      int64(tokenId.SeriesId),
		EditionNumber: int64(tokenId.EditionNumber),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	result, err := mapEditionModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map edition model to type")
	}
	return result, nil
}

func (r *Repository) GetEditions(ctx context.Context, limit int32, offset int32) ([]*entity.Edition, error) {
	models, err := r.queries.GetEditions(ctx, gen.GetEditionsParams{
		Limit:  normalizeLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapEditionModels(models)
}

func (r *Repository) GetEditionsBySeries(ctx context.Context, seriesId uint64, limit int32, offset int32) ([]*entity.Edition, error) {
	models, err := r.queries.GetEditionsBySeries(ctx, gen.GetEditionsBySeriesParams{
		SeriesID: int64(seriesId),
		Limit:    normalizeLimit(limit),
		Offset:   offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapEditionModels(models)
}

func (r *Repository) GetEditionsByOwner(ctx context.Context, ownerId series.AccountId, limit int32, offset int32) ([]*entity.Edition, error) {
	models, err := r.queries.GetEditionsByOwner(ctx, gen.GetEditionsByOwnerParams{
		OwnerID: ownerId.String(),
		Limit:   normalizeLimit(limit),
		Offset:  offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapEditionModels(models)
}

func mapEditionModels(models []gen.RegistryEdition) ([]*entity.Edition, error) {
	results := make([]*entity.Edition, 0, len(models))
	for _, model := range models {
		result, err := mapEditionModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map edition model to type")
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Repository) CountEditionsByOwner(ctx context.Context, ownerId series.AccountId) (uint64, error) {
	count, err := r.queries.CountEditionsByOwner(ctx, ownerId.String())
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return uint64(count), nil
}

func (r *Repository) GetRegistryInfo(ctx context.Context) (*entity.RegistryInfo, error) {
	model, err := r.queries.GetRegistryInfo(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	return mapRegistryInfoModelToType(model), nil
}

func (r *Repository) CreateSeries(ctx context.Context, s *series.Series) (uint64, error) {
	params, err := mapSeriesTypeToCreateParams(s)
	if err != nil {
		return 0, errors.Wrap(err, "failed to map series type to params")
	}
	id, err := r.queries.CreateSeries(ctx, params)
	if err != nil {
		return 0, errors.Wrap(err, "error during exec")
	}
	return uint64(id), nil
}

func (r *Repository) UpdateSeries(ctx context.Context, s *series.Series) error {
	params, err := mapSeriesTypeToUpdateParams(s)
	if err != nil {
		return errors.Wrap(err, "failed to map series type to params")
	}
	if err := r.queries.UpdateSeries(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteSeries(ctx context.Context, seriesId uint64) error {
	if err := r.queries.DeleteSeries(ctx, int64(seriesId)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateEdition(ctx context.Context, edition *entity.Edition) error {
	params, err := mapEditionTypeToCreateParams(edition)
	if err != nil {
		return errors.Wrap(err, "failed to map edition type to params")
	}
	if err := r.queries.CreateEdition(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) UpdateEdition(ctx context.Context, edition *entity.Edition) error {
	approvedBytes, err := marshalApprovedAccounts(edition.ApprovedAccounts)
	if err != nil {
		return errors.Wrap(err, "failed to marshal approved accounts")
	}
	if err := r.queries.UpdateEdition(ctx, gen.UpdateEditionParams{
		SeriesID:         int64(edition.SeriesId),
		EditionNumber:    int64(edition.EditionNumber),
		OwnerID:          edition.OwnerId.String(),
		ApprovedAccounts: approvedBytes,
		NextApprovalID:   int64(edition.NextApprovalId),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) SetRegistryInfo(ctx context.Context, info *entity.RegistryInfo) error {
	var baseURI pgtype.Text
	if info.BaseURI != nil {
		baseURI = pgtype.Text{String: *info.BaseURI, Valid: true}
	}
	if err := r.queries.SetRegistryInfo(ctx, gen.SetRegistryInfoParams{
		Name:    info.Name,
		Symbol:  info.Symbol,
		BaseUri: baseURI,
		OwnerID: info.OwnerId.String(),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
