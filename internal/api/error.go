package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api: http %d: %s", e.StatusCode, msg)
}

// IsNotFound reports whether err wraps a 404 response.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusNotFound
	}
	return false
}
