package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/series-registry/modules/registry/usecase"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
)

// Mutating endpoints identify the caller and the attached storage deposit
// through these headers. The deposit is an integer in the smallest
// denomination.
const (
	HeaderCaller  = "X-Caller"
	HeaderDeposit = "X-Attached-Deposit"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

func parseCall(ctx *fiber.Ctx) (usecase.Call, error) {
	caller := ctx.Get(HeaderCaller)
	if caller == "" {
		return usecase.Call{}, errs.NewPublicErrorWithCode("missing "+HeaderCaller+" header", "INVALID_CALLER")
	}
	deposit := uint128.Zero
	if raw := ctx.Get(HeaderDeposit); raw != "" {
		parsed, err := uint128.FromString(raw)
		if err != nil {
			return usecase.Call{}, errs.NewPublicErrorWithCode("invalid "+HeaderDeposit+" header", "INVALID_DEPOSIT")
		}
		deposit = parsed
	}
	return usecase.Call{Caller: series.AccountId(caller), Deposit: deposit}, nil
}

func parseTokenId(raw string) (series.TokenId, error) {
	tokenId, err := series.NewTokenIdFromString(raw)
	if err != nil {
		return series.TokenId{}, errs.WithPublicMessageCode(errors.Mark(err, errs.InvalidArgument), "invalid token id", "MALFORMED_IDENTIFIER")
	}
	return tokenId, nil
}

// publicErrorMappings translates domain and usecase failures into public
// errors with stable codes; the error kind mark drives the HTTP status.
var publicErrorMappings = []struct {
	target error
	kind   errs.ErrorKind
	code   string
}{
	{usecase.ErrSeriesNotFound, errs.NotFound, "SERIES_NOT_FOUND"},
	{usecase.ErrTokenNotFound, errs.NotFound, "TOKEN_NOT_FOUND"},
	{usecase.ErrRegistryNotInitialized, errs.NotFound, "REGISTRY_NOT_INITIALIZED"},
	{usecase.ErrNotOwner, errs.Unauthorized, "NOT_OWNER"},
	{usecase.ErrNotOwnerOrApproved, errs.Unauthorized, "NOT_OWNER_OR_APPROVED"},
	{usecase.ErrDuplicateTitle, errs.Conflict, "DUPLICATE_TITLE"},
	{usecase.ErrSeriesNotEmpty, errs.Conflict, "SERIES_NOT_EMPTY"},
	{usecase.ErrSelfTransfer, errs.Conflict, "SELF_TRANSFER"},
	{usecase.ErrInsufficientStorageDeposit, errs.InvalidArgument, "INSUFFICIENT_STORAGE_DEPOSIT"},
	{usecase.ErrTooManyReceivers, errs.InvalidArgument, "TOO_MANY_RECEIVERS"},
	{usecase.ErrInvalidCaller, errs.InvalidArgument, "INVALID_CALLER"},
	{series.ErrSupplyExhausted, errs.Conflict, "SUPPLY_EXHAUSTED"},
	{series.ErrSeriesExhausted, errs.Conflict, "SERIES_EXHAUSTED"},
	{series.ErrInvalidMetadata, errs.InvalidArgument, "INVALID_METADATA"},
	{series.ErrRoyaltyOverflow, errs.InvalidArgument, "ROYALTY_OVERFLOW"},
	{series.ErrAssetDistributionMismatch, errs.InvalidArgument, "ASSET_DISTRIBUTION_MISMATCH"},
	{series.ErrMissingDistribution, errs.InvalidArgument, "MISSING_DISTRIBUTION"},
	{series.ErrUnexpectedDistribution, errs.InvalidArgument, "UNEXPECTED_DISTRIBUTION"},
	{series.ErrMalformedIdentifier, errs.InvalidArgument, "MALFORMED_IDENTIFIER"},
	{series.ErrPayoutTooLong, errs.InvalidArgument, "PAYOUT_TOO_LONG"},
}

// mapUsecaseError converts known failures to public errors; everything else
// passes through and surfaces as an internal error.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	for _, mapping := range publicErrorMappings {
		if errors.Is(err, mapping.target) {
			return errs.WithPublicMessageCode(errors.Mark(err, mapping.kind), "", mapping.code)
		}
	}
	return errors.WithStack(err)
}
