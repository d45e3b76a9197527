package httphandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type registryInfoResult struct {
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	BaseURI *string `json:"baseUri"`
	OwnerId string  `json:"ownerId"`
}

type getRegistryInfoResponse = HttpResponse[registryInfoResult]

func (h *HttpHandler) GetRegistryInfo(ctx *fiber.Ctx) error {
	info, err := h.usecase.GetRegistryInfo(ctx.UserContext())
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getRegistryInfoResponse{
		Result: &registryInfoResult{
			Name:    info.Name,
			Symbol:  info.Symbol,
			BaseURI: info.BaseURI,
			OwnerId: info.OwnerId.String(),
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type patchBaseURIRequest struct {
	BaseURI *string `json:"baseUri"`
}

func (h *HttpHandler) PatchBaseURI(ctx *fiber.Ctx) error {
	call, err := parseCall(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req patchBaseURIRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	info, err := h.usecase.PatchBaseURI(ctx.UserContext(), call, req.BaseURI)
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getRegistryInfoResponse{
		Result: &registryInfoResult{
			Name:    info.Name,
			Symbol:  info.Symbol,
			BaseURI: info.BaseURI,
			OwnerId: info.OwnerId.String(),
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type getDelimitersResult struct {
	Token   string `json:"token"`
	Title   string `json:"title"`
	Edition string `json:"edition"`
}

type getDelimitersResponse = HttpResponse[getDelimitersResult]

func (h *HttpHandler) GetDelimiters(ctx *fiber.Ctx) error {
	token, title, edition := h.usecase.Delimiters()
	resp := getDelimitersResponse{
		Result: &getDelimitersResult{
			Token:   token,
			Title:   title,
			Edition: edition,
		},
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}

type getTotalSupplyResult struct {
	TotalSupply uint64 `json:"totalSupply"`
	SeriesCount uint64 `json:"seriesCount"`
}

type getTotalSupplyResponse = HttpResponse[getTotalSupplyResult]

func (h *HttpHandler) GetTotalSupply(ctx *fiber.Ctx) error {
	total, err := h.usecase.TotalSupply(ctx.UserContext())
	if err != nil {
		return mapUsecaseError(err)
	}
	seriesCount, err := h.usecase.CountSeries(ctx.UserContext())
	if err != nil {
		return mapUsecaseError(err)
	}
	resp := getTotalSupplyResponse{
		Result: lo.ToPtr(getTotalSupplyResult{
			TotalSupply: total,
			SeriesCount: seriesCount,
		}),
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(resp))
}
