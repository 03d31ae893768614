package errors

import "fmt"

// HTTPError is an error that carries the HTTP status code it should be
// served with. Delivery layers build these in mapError; pkg/response
// unwraps them when writing the envelope.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
)
