package solutions

import (
	"errors"
	"testing"

	"github.com/olgasafonova/freshdesk-solutions-go/internal/apierrors"
)

// asHTTPError asserts err is (or wraps) an HTTPError and returns it
func asHTTPError(t *testing.T, err error) *apierrors.HTTPError {
	t.Helper()
	var httpErr *apierrors.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	return httpErr
}

func apiIsNonJSON(err error) bool {
	return apierrors.IsNonJSON(err)
}
