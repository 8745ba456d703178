// Package errors provides custom error types for the budgetbook API.
// All service-layer errors should use AppError so handlers and the CLI can
// report a stable code plus an actionable message naming the field and the
// constraint that failed, without leaking storage details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so that errors.Is(err, ErrSourceEmpty) holds for
// copies made by Wrap and WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Access errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInvalidMonth   = &AppError{Code: "INVALID_MONTH", Message: "Month must use the YYYY-MM format", StatusCode: http.StatusBadRequest}
	ErrParse          = &AppError{Code: "PARSE_ERROR", Message: "Malformed transaction row", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Taxonomy errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrSubcategoryNotFound = &AppError{Code: "SUBCATEGORY_NOT_FOUND", Message: "Subcategory not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory   = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category or subcategory with this name already exists", StatusCode: http.StatusConflict}
	ErrCategoryHasChildren = &AppError{Code: "CATEGORY_HAS_CHILDREN", Message: "Category still has subcategories", StatusCode: http.StatusConflict}
	ErrUnknownCategoryPair = &AppError{Code: "UNKNOWN_CATEGORY_PAIR", Message: "Category and subcategory are not in the taxonomy", StatusCode: http.StatusUnprocessableEntity}
)

// Transaction errors.
var (
	ErrTransactionNotFound     = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrTransactionCleared      = &AppError{Code: "TRANSACTION_CLEARED", Message: "Cleared transactions must be uncleared before editing", StatusCode: http.StatusConflict}
	ErrInvalidStatusTransition = &AppError{Code: "INVALID_STATUS_TRANSITION", Message: "Transaction is already in the requested status", StatusCode: http.StatusConflict}
)

// Budget plan errors.
var (
	ErrPlanRowNotFound = &AppError{Code: "PLAN_ROW_NOT_FOUND", Message: "Budget plan row not found", StatusCode: http.StatusNotFound}
	ErrTargetNotEmpty  = &AppError{Code: "TARGET_NOT_EMPTY", Message: "Target month already has a budget plan", StatusCode: http.StatusConflict}
	ErrSourceEmpty     = &AppError{Code: "SOURCE_EMPTY", Message: "Source month has no budget plan rows to copy", StatusCode: http.StatusConflict}
)

// Asset errors.
var (
	ErrAssetAccountNotFound  = &AppError{Code: "ASSET_ACCOUNT_NOT_FOUND", Message: "Asset account not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAssetAccount = &AppError{Code: "DUPLICATE_ASSET_ACCOUNT", Message: "An asset account with this name already exists", StatusCode: http.StatusConflict}
	ErrAccountClosed         = &AppError{Code: "ACCOUNT_CLOSED", Message: "Asset account is closed", StatusCode: http.StatusConflict}
)

// Savings goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "Savings goal not found", StatusCode: http.StatusNotFound}
)
