package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/series-registry/modules/registry/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getEditionRequest struct {
	TokenId string `params:"tokenId"`
}

type getEditionResponse = HttpResponse[editionViewResult]

func (h *HttpHandler) GetEdition(ctx *fiber.Ctx) error {
	var req getEditionRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid token id")
	}
	tokenId, err := parseTokenId(req.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}
	view, err := h.usecase.GetEdition(ctx.UserContext(), tokenId)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getEditionResponse{Result: lo.ToPtr(newEditionViewResult(view))}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type getEditionsRequest struct {
	Owner  string `query:"owner"`
	Limit  int32  `query:"limit"`
	Offset int32  `query:"offset"`
}

func (r *getEditionsRequest) Validate() error {
	var errList []error
	if r.Limit < 0 {
		errList = append(errList, errors.New("'limit' must not be negative"))
	}
	if r.Offset < 0 {
		errList = append(errList, errors.New("'offset' must not be negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getEditionsResult struct {
	List []editionViewResult `json:"list"`

	// Total is the owner's full edition count, present only when the list is
	// filtered by owner.
	Total *uint64 `json:"total,omitempty"`
}

type getEditionsResponse = HttpResponse[getEditionsResult]

func (h *HttpHandler) GetEditions(ctx *fiber.Ctx) error {
	req := getEditionsRequest{Limit: defaultListLimit}
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	var views []*usecase.EditionView
	var total *uint64
	var err error
	if req.Owner != "" {
		owner := series.AccountId(req.Owner)
		views, err = h.usecase.GetEditionsByOwner(ctx.UserContext(), owner, req.Limit, req.Offset)
		if err == nil {
			var count uint64
			count, err = h.usecase.CountEditionsByOwner(ctx.UserContext(), owner)
			total = &count
		}
	} else {
		views, err = h.usecase.GetEditions(ctx.UserContext(), req.Limit, req.Offset)
	}
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getEditionsResponse{
		Result: &getEditionsResult{
			List:  lo.Map(views, func(view *usecase.EditionView, _ int) editionViewResult { return newEditionViewResult(view) }),
			Total: total,
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type getEditionsBySeriesRequest struct {
	Id     uint64 `params:"id"`
	Limit  int32  `query:"limit"`
	Offset int32  `query:"offset"`
}

func (h *HttpHandler) GetEditionsBySeries(ctx *fiber.Ctx) error {
	req := getEditionsBySeriesRequest{Limit: defaultListLimit}
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query params")
	}
	views, err := h.usecase.GetEditionsBySeries(ctx.UserContext(), req.Id, req.Limit, req.Offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getEditionsResponse{
		Result: &getEditionsResult{
			List: lo.Map(views, func(view *usecase.EditionView, _ int) editionViewResult { return newEditionViewResult(view) }),
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
