package apiclient

import (
	"errors"
	"fmt"
)

// ErrUnexpectedBody wraps the decode error of a 2xx body that is valid JSON but
// does not fit the expected type.
var ErrUnexpectedBody = errors.New("unexpected response body")

// APIError is returned for every non-2xx response that reaches the response handler.
// Response holds the parsed body (an empty object when the body was not valid JSON).
type APIError struct {
	Message    string
	StatusCode int
	Response   any
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return e.Message
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == code
}
