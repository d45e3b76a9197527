package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/registry")

	r.Get("/info", h.GetRegistryInfo)
	r.Patch("/info/base-uri", h.PatchBaseURI)
	r.Get("/delimiters", h.GetDelimiters)
	r.Get("/supply", h.GetTotalSupply)

	r.Post("/series", h.CreateSeries)
	r.Get("/series", h.GetSeriesList)
	r.Get("/series/:id", h.GetSeries)
	r.Patch("/series/:id", h.UpdateSeries)
	r.Delete("/series/:id", h.DeleteSeries)
	r.Post("/series/:id/cap", h.CapSeries)
	r.Get("/series/:id/supply", h.GetSeriesSupply)
	r.Get("/series/:id/editions", h.GetEditionsBySeries)
	r.Post("/series/:id/mint", h.MintEdition)

	r.Get("/editions", h.GetEditions)
	r.Get("/editions/:tokenId", h.GetEdition)
	r.Post("/editions/:tokenId/transfer", h.Transfer)
	r.Post("/editions/:tokenId/approvals", h.Approve)
	r.Delete("/editions/:tokenId/approvals/:account", h.Revoke)
	r.Delete("/editions/:tokenId/approvals", h.RevokeAll)
	r.Get("/editions/:tokenId/approvals/:account", h.IsApproved)
	r.Get("/editions/:tokenId/payout", h.GetPayout)
	return nil
}
