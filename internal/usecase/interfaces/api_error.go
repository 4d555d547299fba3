package interfaces

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidResponseShape is returned when the backend answers 2xx but the
// payload is missing the expected list or object.
var ErrInvalidResponseShape = errors.New("invalid response shape")

// APIError is the typed failure surfaced by IInvoicingAPI implementations.
//
// StatusCode zero means the request never got an HTTP answer (timeout, DNS,
// connection reset); any other value is the upstream status. Message carries
// the server-provided error text when one was parseable.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("invoicing api: network failure: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("invoicing api: status %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("invoicing api: status %d", e.StatusCode)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports an explicit upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsServerError reports an upstream 5xx.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusInternalServerError
}

// IsNetworkFailure reports a transport-level failure with no HTTP status.
func IsNetworkFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 0
}
