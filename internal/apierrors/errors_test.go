package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *HTTPError
		expected string
	}{
		{
			name:     "plain status",
			err:      &HTTPError{StatusCode: 404, Status: "404 Not Found"},
			expected: "HTTP error 404 (404 Not Found)",
		},
		{
			name:     "server error",
			err:      &HTTPError{StatusCode: 500, Status: "500 Internal Server Error"},
			expected: "HTTP error 500 (500 Internal Server Error)",
		},
		{
			name:     "rate limited with retry-after",
			err:      &HTTPError{StatusCode: 429, Status: "429 Too Many Requests", RetryAfter: "30"},
			expected: "HTTP error 429 (429 Too Many Requests), retry after 30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("HTTPError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewHTTPError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Header:     http.Header{},
	}

	err := NewHTTPError(resp)
	if err.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", err.StatusCode)
	}
	if err.Status != "404 Not Found" {
		t.Errorf("Status = %q, want %q", err.Status, "404 Not Found")
	}
	if err.RetryAfter != "" {
		t.Errorf("RetryAfter = %q, want empty for non-429", err.RetryAfter)
	}
}

func TestNewHTTPError_CapturesRetryAfter(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "120")
	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Status:     "429 Too Many Requests",
		Header:     header,
	}

	err := NewHTTPError(resp)
	if err.RetryAfter != "120" {
		t.Errorf("RetryAfter = %q, want %q", err.RetryAfter, "120")
	}
}

func TestNewHTTPError_IgnoresRetryAfterOutside429(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "60")
	resp := &http.Response{
		StatusCode: http.StatusServiceUnavailable,
		Status:     "503 Service Unavailable",
		Header:     header,
	}

	// Retry-After is only captured for 429 responses
	err := NewHTTPError(resp)
	if err.RetryAfter != "" {
		t.Errorf("RetryAfter = %q, want empty", err.RetryAfter)
	}
}

func TestNonJSONError_Error(t *testing.T) {
	err := &NonJSONError{ContentType: "text/html; charset=utf-8"}
	expected := `expected application/json response, got "text/html; charset=utf-8"`
	if got := err.Error(); got != expected {
		t.Errorf("NonJSONError.Error() = %q, want %q", got, expected)
	}
}

func TestIsHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected bool
	}{
		{
			name:     "matching code",
			err:      &HTTPError{StatusCode: 404},
			code:     404,
			expected: true,
		},
		{
			name:     "different code",
			err:      &HTTPError{StatusCode: 500},
			code:     404,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("upsert failed: %w", &HTTPError{StatusCode: 429}),
			code:     429,
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("connection refused"),
			code:     404,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     404,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHTTPStatus(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsHTTPStatus() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&HTTPError{StatusCode: 404}) {
		t.Error("IsNotFound should be true for 404")
	}
	if IsNotFound(&HTTPError{StatusCode: 410}) {
		t.Error("IsNotFound should be false for 410")
	}
	if IsNotFound(&NonJSONError{ContentType: "text/html"}) {
		t.Error("IsNotFound should be false for NonJSONError")
	}
}

func TestIsRateLimited(t *testing.T) {
	if !IsRateLimited(&HTTPError{StatusCode: 429}) {
		t.Error("IsRateLimited should be true for 429")
	}
	if IsRateLimited(&HTTPError{StatusCode: 503}) {
		t.Error("IsRateLimited should be false for 503")
	}
}

func TestIsNonJSON(t *testing.T) {
	if !IsNonJSON(&NonJSONError{ContentType: "text/plain"}) {
		t.Error("IsNonJSON should be true for NonJSONError")
	}
	if IsNonJSON(&HTTPError{StatusCode: 200}) {
		t.Error("IsNonJSON should be false for HTTPError")
	}
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "rate limit error with value",
			err:      &HTTPError{StatusCode: 429, RetryAfter: "45"},
			expected: "45",
		},
		{
			name:     "http error without value",
			err:      &HTTPError{StatusCode: 500},
			expected: "",
		},
		{
			name:     "non-http error",
			err:      errors.New("timeout"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RetryAfter(tt.err); got != tt.expected {
				t.Errorf("RetryAfter() = %q, want %q", got, tt.expected)
			}
		})
	}
}
