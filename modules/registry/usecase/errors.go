package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidCaller              = errors.New("invalid caller account id")
	ErrSeriesNotFound             = errors.New("series not found")
	ErrDuplicateTitle             = errors.New("series title already in use")
	ErrSeriesNotEmpty             = errors.New("series has minted editions")
	ErrTokenNotFound              = errors.New("token not found")
	ErrNotOwner                   = errors.New("caller is not the owner")
	ErrNotOwnerOrApproved         = errors.New("caller is neither the owner nor approved")
	ErrSelfTransfer               = errors.New("receiver already owns the token")
	ErrInsufficientStorageDeposit = errors.New("attached deposit does not cover storage cost")
	ErrTooManyReceivers           = errors.New("too many receivers in one batch")
	ErrRegistryNotInitialized     = errors.New("registry info not initialized")
)
