package api

import (
	"github.com/gaze-network/series-registry/modules/registry/api/httphandler"
	"github.com/gaze-network/series-registry/modules/registry/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}
