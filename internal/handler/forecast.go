package handler

import (
	"github.com/deppfellow/transitsim/internal/model"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/deppfellow/transitsim/internal/service"
	"github.com/labstack/echo/v4"
)

type ForecastHandler struct {
	Handler
	service *service.ForecastService
}

func NewForecastHandler(s *server.Server, svc *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *ForecastHandler) LSTM(c echo.Context, _ *model.ForecastRequest) (*model.ForecastResponse, error) {
	return h.service.LSTM(c.Request().Context()), nil
}

func (h *ForecastHandler) Prophet(c echo.Context, _ *model.ForecastRequest) (*model.ForecastResponse, error) {
	return h.service.Prophet(c.Request().Context()), nil
}
