package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gofiber/fiber/v2"
)

type approveRequest struct {
	Account string `json:"account"`

	// Msg is an opaque payload stored with the grant for the grantee to
	// interpret; the registry never inspects it.
	Msg *string `json:"msg"`
}

type approveResult struct {
	ApprovalId uint64 `json:"approvalId"`
}

type approveResponse = HttpResponse[approveResult]

func (h *HttpHandler) Approve(ctx *fiber.Ctx) error {
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
	var req approveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if req.Account == "" {
		return errs.NewPublicError("'account' is required")
	}

	approvalId, err := h.usecase.Approve(ctx.UserContext(), call, tokenId, series.AccountId(req.Account), req.Msg)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := approveResponse{Result: &approveResult{ApprovalId: approvalId}}
	return errors.WithStack(ctx.Status(http.StatusCreated).JSON(resp))
}

type approvalTargetRequest struct {
	TokenId string `params:"tokenId"`
	Account string `params:"account"`
}

type revokeResponse = HttpResponse[struct{}]

func (h *HttpHandler) Revoke(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params approvalTargetRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.WithPublicMessage(err, "invalid params")
	}
	tokenId, err := parseTokenId(params.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := h.usecase.Revoke(ctx.UserContext(), call, tokenId, series.AccountId(params.Account)); err != nil {
		return mapUsecaseError(err)
	}
	resp := revokeResponse{Result: &struct{}{}}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

func (h *HttpHandler) RevokeAll(ctx *fiber.Ctx) error {
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
	if err := h.usecase.RevokeAll(ctx.UserContext(), call, tokenId); err != nil {
		return mapUsecaseError(err)
	}
	resp := revokeResponse{Result: &struct{}{}}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type isApprovedRequest struct {
	TokenId    string  `params:"tokenId"`
	Account    string  `params:"account"`
	ApprovalId *uint64 `query:"approvalId"`
}

type isApprovedResult struct {
	Approved bool `json:"approved"`
}

type isApprovedResponse = HttpResponse[isApprovedResult]

func (h *HttpHandler) IsApproved(ctx *fiber.Ctx) error {
	var req isApprovedRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid params")
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query params")
	}
	tokenId, err := parseTokenId(req.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}
	approved, err := h.usecase.IsApproved(ctx.UserContext(), tokenId, series.AccountId(req.Account), req.ApprovalId)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := isApprovedResponse{Result: &isApprovedResult{Approved: approved}}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
