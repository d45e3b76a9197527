package series

import "github.com/cockroachdb/errors"

var (
	ErrInvalidMetadata           = errors.New("invalid series metadata")
	ErrRoyaltyOverflow           = errors.New("royalty shares exceed 10000 basis points")
	ErrAssetDistributionMismatch = errors.New("asset distribution does not match series copies")
	ErrMissingDistribution       = errors.New("asset distribution is required")
	ErrUnexpectedDistribution    = errors.New("asset distribution must not be provided")
	ErrMalformedIdentifier       = errors.New("malformed token identifier")
	ErrSupplyExhausted           = errors.New("series supply maxed")
	ErrSeriesExhausted           = errors.New("no asset supply remaining")
	ErrPayoutTooLong             = errors.New("payout exceeds maximum number of receivers")
)
