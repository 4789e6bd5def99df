package handler

import (
	"github.com/deppfellow/transitsim/internal/model"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/deppfellow/transitsim/internal/service"
	"github.com/labstack/echo/v4"
)

type OptimizationHandler struct {
	Handler
	service *service.OptimizationService
}

func NewOptimizationHandler(s *server.Server, svc *service.OptimizationService) *OptimizationHandler {
	return &OptimizationHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *OptimizationHandler) AIOptimize(c echo.Context, req *model.AIOptimizeRequest) (*model.AIOptimizeResponse, error) {
	return h.service.AIOptimize(c.Request().Context(), req), nil
}

func (h *OptimizationHandler) GeneticOptimize(c echo.Context, req *model.GeneticOptimizeRequest) (*model.GeneticOptimizeResponse, error) {
	return h.service.GeneticOptimize(c.Request().Context(), req), nil
}
