package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/deppfellow/transitsim/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	server   *server.Server
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetricsMiddleware(s *server.Server) (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		server: s,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transitsim",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transitsim",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route, including simulated processing time.",
			Buckets:   []float64{0.005, 0.05, 0.25, 0.5, 1, 1.5, 2, 2.5, 3, 4, 5},
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := s.Metrics.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *MetricsMiddleware) Collect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := statusOf(c.Response().Status, err)
			route := c.Path()
			if status == http.StatusNotFound || route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.server.Metrics, promhttp.HandlerOpts{
		Registry: m.server.Metrics,
	}))
}
