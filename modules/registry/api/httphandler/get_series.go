package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getSeriesRequest struct {
	Id uint64 `params:"id"`
}

type getSeriesResponse = HttpResponse[seriesResult]

func (h *HttpHandler) GetSeries(ctx *fiber.Ctx) error {
	var req getSeriesRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	result, err := h.usecase.GetSeries(ctx.UserContext(), req.Id)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getSeriesResponse{Result: lo.ToPtr(newSeriesResult(result))}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type getSeriesListRequest struct {
	// Title resolves a single series by its unique title handle.
	Title  string `query:"title"`
	Limit  int32  `query:"limit"`
	Offset int32  `query:"offset"`
}

func (r *getSeriesListRequest) Validate() error {
	var errList []error
	if r.Limit < 0 {
		errList = append(errList, errors.New("'limit' must not be negative"))
	}
	if r.Offset < 0 {
		errList = append(errList, errors.New("'offset' must not be negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getSeriesListResult struct {
	List []seriesResult `json:"list"`
}

type getSeriesListResponse = HttpResponse[getSeriesListResult]

const defaultListLimit = 100

func (h *HttpHandler) GetSeriesList(ctx *fiber.Ctx) error {
	req := getSeriesListRequest{Limit: defaultListLimit}
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	var results []*series.Series
	var err error
	if req.Title != "" {
		var result *series.Series
		result, err = h.usecase.GetSeriesByTitle(ctx.UserContext(), req.Title)
		results = []*series.Series{result}
	} else {
		results, err = h.usecase.GetSeriesList(ctx.UserContext(), req.Limit, req.Offset)
	}
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getSeriesListResponse{
		Result: &getSeriesListResult{
			List: lo.Map(results, func(s *series.Series, _ int) seriesResult { return newSeriesResult(s) }),
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type getSeriesSupplyResult struct {
	MintedCount uint64  `json:"mintedCount"`
	Copies      *uint64 `json:"copies"`
	Remaining   *uint64 `json:"remaining"`
}

type getSeriesSupplyResponse = HttpResponse[getSeriesSupplyResult]

func (h *HttpHandler) GetSeriesSupply(ctx *fiber.Ctx) error {
	var req getSeriesRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid series id")
	}
	supply, err := h.usecase.GetSeriesSupply(ctx.UserContext(), req.Id)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getSeriesSupplyResponse{
		Result: &getSeriesSupplyResult{
			MintedCount: supply.MintedCount,
			Copies:      supply.Copies,
			Remaining:   supply.Remaining,
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
