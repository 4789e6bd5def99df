package handler

import (
	"time"

	"github.com/deppfellow/transitsim/internal/binding"
	"github.com/deppfellow/transitsim/internal/middleware"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives a bound request payload
// and returns the response body or an error.
type HandlerFunc[Req binding.Payload, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared pipeline for typed endpoints: body binding,
// structured logging, New Relic attributes, timing, and the JSON response.
func handleRequest[Req binding.Payload, Res any](
	c echo.Context,
	req Req,
	handler HandlerFunc[Req, Res],
	status int,
) error {
	start := time.Now()
	route := c.Path()
	operation := middleware.OperationName(route)

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", operation)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", operation).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	// ---------------- Binding phase ------------------------------------------
	// Binding never rejects a request; an unusable body only means defaults.
	bindStart := time.Now()
	if err := binding.Bind(c, req); err != nil {
		logger.Debug().
			Err(err).
			Msg("request body ignored, using defaults")

		if txn != nil {
			txn.AddAttribute("binding.status", "defaults")
		}
	} else if txn != nil {
		txn.AddAttribute("binding.status", "success")
	}
	bindDuration := time.Since(bindStart)

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Info().
		Dur("binding_duration", bindDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc. newReq is called
// once per request so payloads are never shared between requests.
//
//	router.POST("/x", handler.Handle(h, myHandlerFn, http.StatusOK, func() *MyReq { return &MyReq{} }))
func Handle[Req binding.Payload, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), handler, status)
	}
}
