package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type mintEditionRequest struct {
	Receiver string `json:"receiver"`
	// Receivers mints one edition per entry, in order, atomically.
	// Mutually exclusive with Receiver.
	Receivers []string `json:"receivers"`
}

func (r *mintEditionRequest) Validate() error {
	var errList []error
	if r.Receiver == "" && len(r.Receivers) == 0 {
		errList = append(errList, errors.New("'receiver' or 'receivers' is required"))
	}
	if r.Receiver != "" && len(r.Receivers) > 0 {
		errList = append(errList, errors.New("'receiver' and 'receivers' are mutually exclusive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type mintEditionResult struct {
	Editions []editionResult `json:"editions"`
}

type mintEditionResponse = HttpResponse[mintEditionResult]

func (h *HttpHandler) MintEdition(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var params getSeriesRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	var req mintEditionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	receivers := req.Receivers
	if req.Receiver != "" {
		receivers = []string{req.Receiver}
	}
	minted, err := h.usecase.BatchMintEdition(ctx.UserContext(), call, params.Id, lo.Map(receivers, func(receiver string, _ int) series.AccountId {
		return series.AccountId(receiver)
	}))
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := mintEditionResponse{
		Result: &mintEditionResult{
			Editions: lo.Map(minted, func(edition *entity.Edition, _ int) editionResult { return newEditionResult(edition) }),
		},
	}
	return errors.WithStack(ctx.Status(http.StatusCreated).JSON(resp))
}
