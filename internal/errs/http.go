package errs

import (
	"net/http"
)

// New builds an HTTPError whose code is derived from the status text.
func New(status int, message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message:  message,
		Status:   status,
		Override: override,
	}
}

func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	err := New(http.StatusNotFound, message, override)

	if code != nil {
		err.Code = *code
	}

	return err
}

func NewMethodNotAllowedError(message string) *HTTPError {
	return New(http.StatusMethodNotAllowed, message, false)
}

// NewTooManyRequestsError is returned when the rate limiter denies a request.
func NewTooManyRequestsError(message string) *HTTPError {
	return New(http.StatusTooManyRequests, message, false)
}

func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false)
}
