package entity

import (
	"time"

	"github.com/gaze-network/series-registry/modules/registry/series"
)

// Approval is a single transfer grant on an edition. Msg is an opaque payload
// attached by the owner at grant time; the registry stores it verbatim for the
// grantee to interpret and never inspects it.
type Approval struct {
	Id  uint64
	Msg *string
}

// Edition is a single minted token of a series. The token id embeds the series
// id and the 1-based edition number, so an edition never moves between series.
type Edition struct {
	SeriesId      uint64
	EditionNumber uint64
	OwnerId       series.AccountId
	AssetId       string
	Filetype      string
	HasExtra      bool
	MintedAt      time.Time

	// ApprovedAccounts maps a grantee account to its approval grant. Ids
	// increase monotonically per token via NextApprovalId and are never
	// reused, even after revocation.
	ApprovedAccounts map[series.AccountId]Approval
	NextApprovalId   uint64
}

func (e Edition) TokenId() series.TokenId {
	return series.NewTokenId(e.SeriesId, e.EditionNumber)
}

// Approve grants approval to accountId and returns the assigned approval id.
// Re-approving an existing grantee issues a fresh id and replaces the stored
// msg.
func (e *Edition) Approve(accountId series.AccountId, msg *string) uint64 {
	if e.ApprovedAccounts == nil {
		e.ApprovedAccounts = make(map[series.AccountId]Approval)
	}
	approvalId := e.NextApprovalId
	e.ApprovedAccounts[accountId] = Approval{Id: approvalId, Msg: msg}
	e.NextApprovalId++
	return approvalId
}

func (e *Edition) Revoke(accountId series.AccountId) {
	delete(e.ApprovedAccounts, accountId)
}

func (e *Edition) RevokeAll() {
	e.ApprovedAccounts = nil
}

// IsApproved reports whether accountId holds an approval on this edition.
// When approvalId is non-nil the grant must also carry that exact id.
func (e Edition) IsApproved(accountId series.AccountId, approvalId *uint64) bool {
	granted, ok := e.ApprovedAccounts[accountId]
	if !ok {
		return false
	}
	return approvalId == nil || granted.Id == *approvalId
}

// TransferTo moves ownership and clears all approvals, as required after any
// ownership change.
func (e *Edition) TransferTo(newOwnerId series.AccountId) {
	e.OwnerId = newOwnerId
	e.ApprovedAccounts = nil
}
