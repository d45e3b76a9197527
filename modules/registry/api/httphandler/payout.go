package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
)

type getPayoutRequest struct {
	TokenId      string `params:"tokenId"`
	Balance      string `query:"balance"`
	MaxLenPayout uint32 `query:"maxLenPayout"`
}

const defaultMaxLenPayout = 10

type getPayoutResult struct {
	// Payout maps each payee account to its share of the balance, in the
	// smallest denomination. Shares always sum to the balance exactly.
	Payout map[string]uint128.Uint128 `json:"payout"`
}

type getPayoutResponse = HttpResponse[getPayoutResult]

func (h *HttpHandler) GetPayout(ctx *fiber.Ctx) error {
	req := getPayoutRequest{MaxLenPayout: defaultMaxLenPayout}
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid token id")
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query params")
	}
	tokenId, err := parseTokenId(req.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}
	if req.Balance == "" {
		return errs.NewPublicError("'balance' is required")
	}
	balance, err := uint128.FromString(req.Balance)
	if err != nil {
		return errs.WithPublicMessage(err, "invalid 'balance'")
	}

	payout, err := h.usecase.ComputePayout(ctx.UserContext(), tokenId, balance, req.MaxLenPayout)
	if err != nil {
		return mapUsecaseError(err)
	}
	result := getPayoutResult{Payout: make(map[string]uint128.Uint128, len(payout))}
	for account, share := range payout {
		result.Payout[account.String()] = share
	}
	resp := getPayoutResponse{Result: &result}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
