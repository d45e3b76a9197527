package datagateway

import (
	"context"

	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

type RegistryDataGateway interface {
	RegistryReaderDataGateway
	RegistryWriterDataGateway

	// BeginRegistryTx returns a new RegistryDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginRegistryTx(ctx context.Context) (RegistryDataGatewayWithTx, error)
}

type RegistryDataGatewayWithTx interface {
	RegistryDataGateway
	Tx
}

type RegistryReaderDataGateway interface {
	// GetSeries returns the series with the given id. Returns errs.NotFound if no such series exists.
	GetSeries(ctx context.Context, seriesId uint64) (*series.Series, error)
	// GetSeriesByTitle returns the series with the given exact title. Returns errs.NotFound if no such series exists.
	GetSeriesByTitle(ctx context.Context, title string) (*series.Series, error)
	// GetSeriesList returns series ordered by id ascending. Use limit = -1 as no limit.
	GetSeriesList(ctx context.Context, limit int32, offset int32) ([]*series.Series, error)
	CountSeries(ctx context.Context) (uint64, error)
	// CountEditions returns the number of minted editions across all series.
	CountEditions(ctx context.Context) (uint64, error)

	// GetEdition returns the edition with the given token id. Returns errs.NotFound if no such edition exists.
	GetEdition(ctx context.Context, tokenId series.TokenId) (*entity.Edition, error)
	// GetEditions returns editions ordered by series id then edition number. Use limit = -1 as no limit.
	GetEditions(ctx context.Context, limit int32, offset int32) ([]*entity.Edition, error)
	GetEditionsBySeries(ctx context.Context, seriesId uint64, limit int32, offset int32) ([]*entity.Edition, error)
	GetEditionsByOwner(ctx context.Context, ownerId series.AccountId, limit int32, offset int32) ([]*entity.Edition, error)
	CountEditionsByOwner(ctx context.Context, ownerId series.AccountId) (uint64, error)

	// GetRegistryInfo returns the collection-level metadata. Returns errs.NotFound when the registry has not been initialized.
	GetRegistryInfo(ctx context.Context) (*entity.RegistryInfo, error)
}

type RegistryWriterDataGateway interface {
	// CreateSeries persists a new series and returns its assigned numeric id.
	CreateSeries(ctx context.Context, s *series.Series) (uint64, error)
	UpdateSeries(ctx context.Context, s *series.Series) error
	DeleteSeries(ctx context.Context, seriesId uint64) error

	CreateEdition(ctx context.Context, edition *entity.Edition) error
	UpdateEdition(ctx context.Context, edition *entity.Edition) error

	SetRegistryInfo(ctx context.Context, info *entity.RegistryInfo) error
}
