package router

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/transitsim/internal/config"
	"github.com/deppfellow/transitsim/internal/handler"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/deppfellow/transitsim/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, mutate func(cfg *config.Config)) *echo.Echo {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Simulation.Seed = 2024
	cfg.Simulation.Latency = config.LatencyConfig{}
	if mutate != nil {
		mutate(cfg)
	}

	logger := zerolog.Nop()
	srv, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	services, err := service.NewServices(srv)
	require.NoError(t, err)

	r, err := NewRouter(srv, handler.NewHandlers(srv, services))
	require.NoError(t, err)

	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}

	return rec, out
}

func object(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()

	v, ok := m[key].(map[string]any)
	require.True(t, ok, "%s is not an object: %v", key, m[key])
	return v
}

func assertBetween(t *testing.T, v any, lo, hi float64, places int) {
	t.Helper()

	f, ok := v.(float64)
	require.True(t, ok, "not a number: %v", v)
	assert.GreaterOrEqual(t, f, lo)
	assert.LessOrEqual(t, f, hi)

	scale := math.Pow(10, float64(places))
	assert.InDelta(t, math.Round(f*scale)/scale, f, 1e-9, "%v has more than %d decimals", f, places)
}

func TestTestEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, _ := do(t, r, http.MethodGet, "/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Merhaba Aleyna", "status": "success"}`, rec.Body.String())
}

func TestAIOptimize(t *testing.T) {
	r := newTestRouter(t, nil)

	for i := 0; i < 20; i++ {
		rec, body := do(t, r, http.MethodPost, "/api/ai-optimize", `{"file_count": 5}`)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, true, body["success"])
		assert.Equal(t, 5.0, body["processed_files"])

		improvements := object(t, body, "improvements")
		assertBetween(t, improvements["wait_time_reduction"], 10, 20, 1)
		assertBetween(t, improvements["efficiency_gain"], 8, 15, 1)
		assertBetween(t, improvements["overcrowding_reduction"], 30, 50, 1)
		assertBetween(t, improvements["satisfaction_increase"], 20, 30, 1)

		metrics := object(t, body, "new_metrics")
		assertBetween(t, metrics["avgWaitTime"], 6, 8, 1)
		assertBetween(t, metrics["occupancyRate"], 65, 80, 0)
		assertBetween(t, metrics["onTimePerf"], 92, 98, 1)
		assertBetween(t, metrics["overcrowdingRate"], 0.01, 0.03, 3)
	}
}

func TestAIOptimizeFallsBackToDefaults(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, body := range []string{"", "{}", `{"file_count": null}`, `{"file_count": "many"}`, `{"file_count":`, `[1]`} {
		rec, out := do(t, r, http.MethodPost, "/api/ai-optimize", body)

		require.Equal(t, http.StatusOK, rec.Code, "body %q", body)
		assert.Equal(t, 0.0, out["processed_files"], "body %q", body)
	}
}

func TestAIOptimizeKeepsLargeIntegers(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		body string
		want string
	}{
		{`{"file_count": 9007199254740993}`, `"processed_files":9007199254740993`},
		{`{"file_count": 1e17}`, `"processed_files":100000000000000000`},
		{`{"file_count": 9223372036854775807}`, `"processed_files":9223372036854775807`},
		{`{"file_count": 9223372036854775808}`, `"processed_files":0`},
	}

	for _, tt := range tests {
		rec, _ := do(t, r, http.MethodPost, "/api/ai-optimize", tt.body)

		require.Equal(t, http.StatusOK, rec.Code, "body %q", tt.body)
		assert.Contains(t, rec.Body.String(), tt.want, "body %q", tt.body)
	}
}

func TestGeneticOptimize(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, body := do(t, r, http.MethodPost, "/api/genetic-optimize", `{"population_size": 50, "max_generations": 42}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["optimization_complete"])
	assert.Equal(t, 42.0, body["generations_completed"])
	assertBetween(t, body["best_fitness"], 85, 95, 2)

	improvements := object(t, body, "improvements")
	assertBetween(t, improvements["route_efficiency"], 15, 25, 1)
	assertBetween(t, improvements["cost_reduction"], 10000, 50000, 0)

	_, body = do(t, r, http.MethodPost, "/api/genetic-optimize", `{}`)
	assert.Equal(t, 30.0, body["generations_completed"])
}

func TestForecasts(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, lstm := do(t, r, http.MethodPost, "/api/lstm-forecast", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LSTM", lstm["model"])
	assertBetween(t, lstm["accuracy"], 88, 94, 1)

	forecast := object(t, lstm, "forecast")
	assertBetween(t, forecast["next_week_passengers"], 2500000, 3000000, 0)
	assert.Equal(t, "08:00-09:00", forecast["peak_hour"])
	assert.Equal(t, "101 Kızılay-Çankaya", forecast["busiest_route"])
	assertBetween(t, forecast["confidence"], 85, 95, 1)

	rec, prophet := do(t, r, http.MethodPost, "/api/prophet-forecast", `{"ignored": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Prophet", prophet["model"])
	assertBetween(t, prophet["accuracy"], 85, 91, 1)

	forecast = object(t, prophet, "forecast")
	assertBetween(t, forecast["next_week_passengers"], 2400000, 2900000, 0)
	assert.Equal(t, "17:00-18:00", forecast["peak_hour"])
	assert.Equal(t, "102 Ulus-Bahçelievler", forecast["busiest_route"])
	assertBetween(t, forecast["confidence"], 80, 90, 1)
}

func TestRunSimulation(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, body := do(t, r, http.MethodPost, "/api/run-simulation", `{"duration": 14}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, 14.0, body["duration_days"])

	results := object(t, body, "simulation_results")
	assertBetween(t, results["total_passengers"], 300000, 400000, 0)
	assertBetween(t, results["bus_assignments"], 2000, 2500, 0)
	assertBetween(t, results["stop_utilization"], 95, 99, 1)
	assertBetween(t, results["max_occupancy"], 150, 180, 0)
	assertBetween(t, results["efficiency_score"], 85, 92, 1)
	assertBetween(t, results["cost_reduction"], 100000, 150000, 0)

	_, body = do(t, r, http.MethodPost, "/api/run-simulation", "")
	assert.Equal(t, 7.0, body["duration_days"])
}

func TestResponsesAreNotIdempotent(t *testing.T) {
	r := newTestRouter(t, nil)

	seen := map[float64]bool{}
	for i := 0; i < 10; i++ {
		_, body := do(t, r, http.MethodPost, "/api/lstm-forecast", "")
		seen[object(t, body, "forecast")["next_week_passengers"].(float64)] = true
	}

	assert.Greater(t, len(seen), 1)
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/run-simulation", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8081")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/ai-optimize", nil)
	preflight.Header.Set(echo.HeaderOrigin, "http://example.com")
	preflight.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, preflight)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, _ := do(t, r, http.MethodGet, "/test", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestErrorShape(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, body := do(t, r, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, 404.0, body["status"])

	rec, body = do(t, r, http.MethodGet, "/api/ai-optimize", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
}

func TestHeadRequests(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, path := range []string{"/test", "/status"} {
		rec, _ := do(t, r, http.MethodHead, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec, _ := do(t, r, http.MethodHead, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStatusAndMetrics(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, body := do(t, r, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "development", body["environment"])

	do(t, r, http.MethodPost, "/api/genetic-optimize", "")

	rec, _ = do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `transitsim_http_requests_total{method="POST",route="/api/genetic-optimize",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "transitsim_http_request_duration_seconds")
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(t, func(cfg *config.Config) {
		cfg.Server.RateLimit.Enabled = true
		cfg.Server.RateLimit.RequestsPerSecond = 0.001
		cfg.Server.RateLimit.Burst = 1
	})

	rec, _ := do(t, r, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, r, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", body["code"])
}

func TestRoutesAreRegistered(t *testing.T) {
	r := newTestRouter(t, nil)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range Routes {
		assert.True(t, registered[route.Method+" "+route.Path], "%s %s not registered", route.Method, route.Path)
	}
}
