package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type transferRequest struct {
	Receiver string `json:"receiver"`
	// ApprovalId pins the transfer to an exact approval grant. Optional for
	// owner transfers.
	ApprovalId *uint64 `json:"approvalId"`
}

func (r *transferRequest) Validate() error {
	var errList []error
	if r.Receiver == "" {
		errList = append(errList, errors.New("'receiver' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type transferResponse = HttpResponse[editionResult]

func (h *HttpHandler) Transfer(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params getEditionRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.WithPublicMessage(err, "invalid token id")
	}
	tokenId, err := parseTokenId(params.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}
	var req transferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	transferred, err := h.usecase.Transfer(ctx.UserContext(), call, tokenId, series.AccountId(req.Receiver), req.ApprovalId)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := transferResponse{Result: lo.ToPtr(newEditionResult(transferred))}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
