package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
)

// MaxBatchMintReceivers bounds a single batch mint call.
const MaxBatchMintReceivers = 10

// MintEdition mints the next edition of a series to the receiver. Only the
// series owner can mint. Edition numbers are sequential from 1 and asset
// slots are consumed in table order.
func (u *Usecase) MintEdition(ctx context.Context, call Call, seriesId uint64, receiver series.AccountId) (*entity.Edition, error) {
	editions, err := u.BatchMintEdition(ctx, call, seriesId, []series.AccountId{receiver})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return editions[0], nil
}

// BatchMintEdition mints one edition per receiver, in order, in a single
// transaction. Either every receiver gets its edition or none does.
func (u *Usecase) BatchMintEdition(ctx context.Context, call Call, seriesId uint64, receivers []series.AccountId) ([]*entity.Edition, error) {
	if err := call.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(receivers) == 0 {
		return nil, errors.Wrap(ErrInvalidCaller, "no receivers")
	}
	if len(receivers) > MaxBatchMintReceivers {
		return nil, errors.Wrapf(ErrTooManyReceivers, "%d receivers, max is %d", len(receivers), MaxBatchMintReceivers)
	}
	for _, receiver := range receivers {
		if !receiver.Valid() {
			return nil, errors.Wrapf(series.ErrInvalidMetadata, "invalid receiver account id %q", receiver)
		}
	}

	var minted []*entity.Edition
	err := u.withRegistryTx(ctx, func(dg datagateway.RegistryDataGatewayWithTx) error {
		current, err := getSeriesTx(ctx, dg, seriesId)
		if err != nil {
			return errors.WithStack(err)
		}
		if current.OwnerId != call.Caller {
			return errors.Wrapf(ErrNotOwner, "series %d belongs to %s", seriesId, current.OwnerId)
		}

		mintedAt := time.Now().UTC()
		editions := make([]*entity.Edition, 0, len(receivers))
		var storageBytes uint64
		for _, receiver := range receivers {
			editionNumber, slot, err := current.NextEdition()
			if err != nil {
				return errors.WithStack(err)
			}
			edition := &entity.Edition{
				SeriesId:      seriesId,
				EditionNumber: editionNumber,
				OwnerId:       receiver,
				AssetId:       slot.AssetId,
				Filetype:      slot.Filetype,
				HasExtra:      current.Distribution.Extras,
				MintedAt:      mintedAt,
			}
			editions = append(editions, edition)
			storageBytes += editionStorageBytes(edition)
		}
		if err := u.chargeStorage(call, storageBytes); err != nil {
			return errors.WithStack(err)
		}
		for _, edition := range editions {
			if err := dg.CreateEdition(ctx, edition); err != nil {
				return errors.Wrap(err, "failed to create edition")
			}
		}
		if err := dg.UpdateSeries(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update series")
		}
		minted = editions
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return minted, nil
}
