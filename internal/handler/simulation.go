package handler

import (
	"github.com/deppfellow/transitsim/internal/model"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/deppfellow/transitsim/internal/service"
	"github.com/labstack/echo/v4"
)

type SimulationHandler struct {
	Handler
	service *service.SimulationService
}

func NewSimulationHandler(s *server.Server, svc *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *SimulationHandler) RunSimulation(c echo.Context, req *model.SimulationRequest) (*model.SimulationResponse, error) {
	return h.service.Run(c.Request().Context(), req), nil
}
