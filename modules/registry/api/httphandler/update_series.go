package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type updateSeriesRequest struct {
	Metadata *struct {
		Title       *string        `json:"title"`
		Description *string        `json:"description"`
		Media       *string        `json:"media"`
		Copies      *series.Copies `json:"copies"`
	} `json:"metadata"`
	Royalty *map[string]uint32 `json:"royalty"`
}

type updateSeriesResponse = HttpResponse[seriesResult]

func (h *HttpHandler) UpdateSeries(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params getSeriesRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	var req updateSeriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}

	var patch *series.MetadataPatch
	if req.Metadata != nil {
		patch = &series.MetadataPatch{
			Title:       req.Metadata.Title,
			Description: req.Metadata.Description,
			Media:       req.Metadata.Media,
			Copies:      req.Metadata.Copies,
		}
	}
	var royalty *series.Royalty
	if req.Royalty != nil {
		mapped := make(series.Royalty, len(*req.Royalty))
		for account, bps := range *req.Royalty {
			mapped[series.AccountId(account)] = bps
		}
		royalty = &mapped
	}

	updated, err := h.usecase.UpdateSeries(ctx.UserContext(), call, params.Id, patch, royalty)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := updateSeriesResponse{Result: lo.ToPtr(newSeriesResult(updated))}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

func (h *HttpHandler) CapSeries(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params getSeriesRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	capped, err := h.usecase.CapSeries(ctx.UserContext(), call, params.Id)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := updateSeriesResponse{Result: lo.ToPtr(newSeriesResult(capped))}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type deleteSeriesResponse = HttpResponse[struct{}]

func (h *HttpHandler) DeleteSeries(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params getSeriesRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	if err := h.usecase.DeleteSeries(ctx.UserContext(), call, params.Id); err != nil {
		return mapUsecaseError(err)
	}
	resp := deleteSeriesResponse{Result: &struct{}{}}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
