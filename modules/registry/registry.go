package registry

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/internal/config"
	"github.com/gaze-network/series-registry/internal/postgres"
	registryapi "github.com/gaze-network/series-registry/modules/registry/api"
	registrydatagateway "github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	registrypostgres "github.com/gaze-network/series-registry/modules/registry/repository/postgres"
	"github.com/gaze-network/series-registry/modules/registry/series"
	registryusecase "github.com/gaze-network/series-registry/modules/registry/usecase"
	"github.com/gaze-network/series-registry/pkg/decimals"
	"github.com/gaze-network/series-registry/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

// denominationDecimals scales the configured whole-unit storage byte cost to
// the smallest denomination used for deposits.
const denominationDecimals = 24

// Module is the series registry service unit: repository, usecase and
// mounted API handlers.
type Module struct {
	usecase      *registryusecase.Usecase
	cleanupFuncs []func(context.Context) error
}

func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	var registryDg registrydatagateway.RegistryDataGateway
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(conf.Modules.Registry.Database) {
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Modules.Registry.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for registry")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		registryDg = registrypostgres.NewRepository(pg)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for registry is not supported", conf.Modules.Registry.Database)
	}

	storageByteCost, err := decimals.ToUint128(conf.Modules.Registry.StorageByteCost, denominationDecimals)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage byte cost")
	}
	registryUsecase := registryusecase.New(registryDg, storageByteCost)

	// Seed the collection-level metadata on first run.
	if conf.Modules.Registry.Registry.Name != "" {
		ownerId, err := series.NewAccountId(conf.Modules.Registry.Registry.OwnerId)
		if err != nil {
			return nil, errors.Wrap(err, "invalid registry owner id")
		}
		if err := registryUsecase.InitRegistry(ctx, entity.RegistryInfo{
			Name:    conf.Modules.Registry.Registry.Name,
			Symbol:  conf.Modules.Registry.Registry.Symbol,
			BaseURI: conf.Modules.Registry.Registry.BaseURI,
			OwnerId: ownerId,
		}); err != nil {
			return nil, errors.Wrap(err, "can't seed registry info")
		}
	}

	// Mount API
	apiHandlers := lo.Uniq(conf.Modules.Registry.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			registryHTTPHandler := registryapi.NewHTTPHandler(registryUsecase)
			if err := registryHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount registry API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	return &Module{
		usecase:      registryUsecase,
		cleanupFuncs: cleanupFuncs,
	}, nil
}

func (m *Module) Shutdown(ctx context.Context) error {
	for _, cleanup := range m.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
