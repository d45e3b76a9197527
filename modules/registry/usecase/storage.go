package usecase

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/uint128"
)

// Per-record fixed storage overhead in bytes, on top of the variable-length
// fields. Covers ids, counters, timestamps and row bookkeeping.
const (
	seriesBaseBytes   = 128
	editionBaseBytes  = 96
	approvalBaseBytes = 16
	slotBaseBytes     = 24
)

func seriesStorageBytes(s *series.Series) uint64 {
	total := uint64(seriesBaseBytes)
	total += uint64(len(s.OwnerId))
	total += uint64(len(s.Metadata.Title))
	total += uint64(len(s.Metadata.Media))
	if s.Metadata.Description != nil {
		total += uint64(len(*s.Metadata.Description))
	}
	for account := range s.Royalty {
		total += uint64(len(account)) + approvalBaseBytes
	}
	total += uint64(len(s.CoverAsset))
	for _, slot := range s.Distribution.Slots {
		total += uint64(len(slot.AssetId)) + uint64(len(slot.Filetype)) + slotBaseBytes
	}
	return total
}

func editionStorageBytes(e *entity.Edition) uint64 {
	total := uint64(editionBaseBytes)
	total += uint64(len(e.OwnerId))
	total += uint64(len(e.AssetId))
	total += uint64(len(e.Filetype))
	for account, grant := range e.ApprovedAccounts {
		total += uint64(len(account)) + approvalBaseBytes
		if grant.Msg != nil {
			total += uint64(len(*grant.Msg))
		}
	}
	return total
}

func approvalStorageBytes(accountId series.AccountId, msg *string) uint64 {
	total := uint64(len(accountId)) + approvalBaseBytes
	if msg != nil {
		total += uint64(len(*msg))
	}
	return total
}

// chargeStorage verifies the attached deposit covers byteCount bytes at the
// configured byte cost. It never writes, so a failing call leaves no state.
func (u *Usecase) chargeStorage(call Call, byteCount uint64) error {
	cost, overflow := u.storageByteCost.MulOverflow(uint128.From64(byteCount))
	if overflow {
		return errors.Wrapf(ErrInsufficientStorageDeposit, "storage cost overflows for %d bytes", byteCount)
	}
	if call.Deposit.Cmp(cost) < 0 {
		return errors.Wrapf(ErrInsufficientStorageDeposit, "need %s, got %s", cost, call.Deposit)
	}
	return nil
}
