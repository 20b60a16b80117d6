package notion

import (
	"errors"
	"fmt"
)

// ValidationError reports a required argument that was empty or absent.
// It is returned before any network activity takes place.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DirectionError reports a sort direction that is not a member of the
// SortDirection enumeration.
type DirectionError struct {
	Direction SortDirection
}

// Error implements the error interface
func (e *DirectionError) Error() string {
	return fmt.Sprintf("direction must be %q or %q, got %q", Ascending, Descending, string(e.Direction))
}

// TransportError reports a request that never produced an HTTP response
// (connection refused, timeout, canceled context). The underlying
// transport error is available via Unwrap.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents a Notion API error response body
type ErrorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("notion API error %d (%s): %s", e.Status, e.Code, e.Message)
}

// APIError reports a non-2xx response from the Notion API. The full
// response body has been received and decoded by the time it is returned.
type APIError struct {
	StatusCode int
	Response   *ErrorResponse
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Response != nil {
		return e.Response.Error()
	}
	return fmt.Sprintf("notion API error %d", e.StatusCode)
}

// IsValidationError checks if err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDirectionError checks if err is a DirectionError.
func IsDirectionError(err error) bool {
	var de *DirectionError
	return errors.As(err, &de)
}

// IsTransportError checks if err is a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsAPIError checks if err is an APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
