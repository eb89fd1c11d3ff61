package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Exception is an error that knows which HTTP status it maps to.
type Exception struct {
	Message    string
	StatusCode int
}

func badRequest(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusBadRequest}
}

func (e *Exception) Error() string {
	return e.Message
}

// WithDetail appends detail to the message. errors.Is and StatusCode still
// resolve to e.
func (e *Exception) WithDetail(detail string) error {
	return fmt.Errorf("%w: %s", e, detail)
}

// StatusCode returns the status of the first Exception in err's chain, or 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
