package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/transitsim/internal/server"
)

// TracingMiddleware reports requests to New Relic. Every method is a
// pass-through when the agent is not running.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// OperationName maps a route path to the operation it serves:
// "/api/lstm-forecast" becomes "lstm_forecast". The names match the keys
// of the simulation latency config.
func OperationName(path string) string {
	op := strings.TrimPrefix(path, "/api")
	op = strings.Trim(op, "/")
	if op == "" {
		return "unmatched"
	}
	return strings.ReplaceAll(op, "-", "_")
}

// NewRelicMiddleware starts a transaction per request.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the current transaction with the request ID, the
// operation and its configured simulated latency, then records the final
// status and any error.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			operation := OperationName(c.Path())
			txn.AddAttribute("transitsim.operation", operation)
			if latency, ok := tm.server.Config.Simulation.Latency.For(operation); ok {
				txn.AddAttribute("transitsim.simulated_latency_ms", latency.Milliseconds())
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			txn.AddAttribute("http.status_code", statusOf(c.Response().Status, err))

			return err
		}
	}
}
