package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesCodeFromStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"not found", NewNotFoundError("Route not found", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"method not allowed", NewMethodNotAllowedError("nope"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNotFoundCustomCode(t *testing.T) {
	code := "ROUTE_MISSING"
	err := NewNotFoundError("missing", true, &code)

	assert.Equal(t, "ROUTE_MISSING", err.Code)
	assert.True(t, err.Override)
}

func TestHTTPErrorSurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(NewTooManyRequestsError("slow down"), "rate limiter")

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.Equal(t, "other", httpErr.WithMessage("other").Message)
}
