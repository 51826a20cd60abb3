package client

import (
	"errors"
	"fmt"
)

// HTTPError is any non-2xx backend response. Detail carries the backend's
// message when it sent one.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// UnauthorizedError is a 401 rejection. By the time the caller sees it the
// stored session token has already been purged.
type UnauthorizedError struct {
	HTTPError
}

// IsUnauthorized reports whether err is (or wraps) a 401 rejection
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}
