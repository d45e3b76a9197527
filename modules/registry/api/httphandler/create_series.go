package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/series-registry/modules/registry/usecase"
	"github.com/gofiber/fiber/v2"
)

type createSeriesRequest struct {
	Metadata struct {
		Title       string         `json:"title"`
		Media       string         `json:"media"`
		Copies      *series.Copies `json:"copies"`
		Description *string        `json:"description"`
	} `json:"metadata"`
	Royalty    map[string]uint32 `json:"royalty"`
	AssetCount uint64            `json:"assetCount"`
	Filetypes  []string          `json:"filetypes"`
	// Distribution is the weighted asset table of a semi-generative series.
	// Omit it for non-generative and fully-generative series.
	Distribution []struct {
		AssetId string `json:"assetId"`
		Supply  uint64 `json:"supply"`
	} `json:"distribution"`
	Extras     bool   `json:"extras"`
	CoverAsset string `json:"coverAsset"`
}

func (r *createSeriesRequest) Validate() error {
	var errList []error
	if r.Metadata.Title == "" {
		errList = append(errList, errors.New("'metadata.title' is required"))
	}
	if r.Metadata.Media == "" {
		errList = append(errList, errors.New("'metadata.media' is required"))
	}
	if r.AssetCount == 0 {
		errList = append(errList, errors.New("'assetCount' must be at least 1"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type createSeriesResponse = HttpResponse[seriesResult]

func (h *HttpHandler) CreateSeries(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req createSeriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	params := usecase.CreateSeriesParams{
		Metadata: series.Metadata{
			Title:       req.Metadata.Title,
			Media:       req.Metadata.Media,
			Copies:      req.Metadata.Copies,
			Description: req.Metadata.Description,
		},
		AssetSpec: series.AssetSpec{
			AssetCount: req.AssetCount,
			Filetypes:  req.Filetypes,
			Extras:     req.Extras,
		},
		CoverAsset: req.CoverAsset,
	}
	if len(req.Royalty) > 0 {
		params.Royalty = make(series.Royalty, len(req.Royalty))
		for account, bps := range req.Royalty {
			params.Royalty[series.AccountId(account)] = bps
		}
	}
	for _, entry := range req.Distribution {
		params.AssetSpec.Distribution = append(params.AssetSpec.Distribution, series.AssetEntry{
			AssetId: entry.AssetId,
			Supply:  entry.Supply,
		})
	}

	created, err := h.usecase.CreateSeries(ctx.UserContext(), call, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	result := newSeriesResult(created)
	resp := createSeriesResponse{Result: &result}
	return errors.WithStack(ctx.Status(http.StatusCreated).JSON(resp))
}
