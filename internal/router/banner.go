package router

import (
	"fmt"
	"io"
)

// WriteBanner prints the startup banner listing the API routes.
func WriteBanner(w io.Writer, addr string) error {
	if _, err := fmt.Fprintf(w, "transitsim API starting on %s\nEndpoints:\n", addr); err != nil {
		return err
	}

	for _, route := range Routes {
		if _, err := fmt.Fprintf(w, "   %-4s %s\n", route.Method, route.Path); err != nil {
			return err
		}
	}

	return nil
}
