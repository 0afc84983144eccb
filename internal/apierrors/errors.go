// Package apierrors provides shared error types for the Freshdesk Solutions client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError indicates an HTTP response outside the success range.
type HTTPError struct {
	StatusCode int    // numeric status code, e.g. 404
	Status     string // status text, e.g. "404 Not Found"
	RetryAfter string // Retry-After header value, set only for 429 responses
}

func (e *HTTPError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("HTTP error %d (%s), retry after %s", e.StatusCode, e.Status, e.RetryAfter)
	}
	return fmt.Sprintf("HTTP error %d (%s)", e.StatusCode, e.Status)
}

// NewHTTPError creates an HTTPError from a completed response, capturing the
// Retry-After header for 429 responses.
func NewHTTPError(resp *http.Response) *HTTPError {
	e := &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		e.RetryAfter = resp.Header.Get("Retry-After")
	}
	return e
}

// NonJSONError indicates a success-status response whose content type is not
// application/json.
type NonJSONError struct {
	ContentType string
}

func (e *NonJSONError) Error() string {
	return fmt.Sprintf("expected application/json response, got %q", e.ContentType)
}

// IsHTTPStatus returns true if the error is an HTTPError with the given status code.
func IsHTTPStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}

// IsNotFound returns true if the error is an HTTP 404.
func IsNotFound(err error) bool {
	return IsHTTPStatus(err, http.StatusNotFound)
}

// IsRateLimited returns true if the error is an HTTP 429.
func IsRateLimited(err error) bool {
	return IsHTTPStatus(err, http.StatusTooManyRequests)
}

// IsNonJSON returns true if the error is a NonJSONError.
func IsNonJSON(err error) bool {
	var nonJSON *NonJSONError
	return errors.As(err, &nonJSON)
}

// RetryAfter extracts the Retry-After value from a rate-limit error, if any.
func RetryAfter(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.RetryAfter
	}
	return ""
}
