package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/uint128"
)

// Call carries the identity and the attached storage deposit of a mutating
// request. Deposits pay for the bytes a call persists; a call that would
// store more than the deposit covers fails before writing anything.
type Call struct {
	Caller  series.AccountId
	Deposit uint128.Uint128
}

func (c Call) Validate() error {
	if !c.Caller.Valid() {
		return errors.Wrapf(ErrInvalidCaller, "invalid caller account id %q", c.Caller)
	}
	return nil
}

type Usecase struct {
	registryDg      datagateway.RegistryDataGateway
	storageByteCost uint128.Uint128
}

func New(registryDg datagateway.RegistryDataGateway, storageByteCost uint128.Uint128) *Usecase {
	return &Usecase{
		registryDg:      registryDg,
		storageByteCost: storageByteCost,
	}
}

// withRegistryTx runs fn inside a repository transaction. fn's writes are
// committed only if it returns nil; any error rolls the whole call back.
func (u *Usecase) withRegistryTx(ctx context.Context, fn func(dg datagateway.RegistryDataGatewayWithTx) error) error {
	tx, err := u.registryDg.BeginRegistryTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return errors.WithStack(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
