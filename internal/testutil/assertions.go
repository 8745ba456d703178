package testutil

import (
	"errors"
	"strings"
	"testing"

	apperrors "budgetbook/internal/errors"
)

// AssertAppError fails unless err is an *AppError carrying expectedCode, and
// returns it for further checks.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got nil", expectedCode)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError %s, got %T: %v", expectedCode, err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertFieldError checks that err is an AppError with expectedCode whose
// message names field, e.g. "amount: must be greater than zero".
func AssertFieldError(t *testing.T, err error, expectedCode, field string) {
	t.Helper()

	appErr := AssertAppError(t, err, expectedCode)
	if !strings.HasPrefix(appErr.Message, field+":") {
		t.Errorf("expected message to name field %q, got %q", field, appErr.Message)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
