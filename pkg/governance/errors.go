package governance

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when a failed response carries no usable reason.
const DefaultErrorMessage = "An error occurred"

// APIError is returned for every non-2xx response from the governance API.
type APIError struct {
	Message string `json:"message"        yaml:"message"`
	Status  int    `json:"status"         yaml:"status"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// NewAPIError creates an APIError.
func NewAPIError(message string, status int, kind string) *APIError {
	return &APIError{
		Message: message,
		Status:  status,
		Kind:    kind,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.Status)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrNoMoreItems     = errors.New("no more items")
)

// AsAPIError extracts an APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Status
	}

	return 0
}

// ErrorKind returns the machine-readable kind carried by err, or "".
func ErrorKind(err error) string {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Kind
	}

	return ""
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}
