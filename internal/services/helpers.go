package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/period"
)

// parseMonth converts a YYYY-MM argument, naming field in the error.
func parseMonth(field, value string) (period.Month, error) {
	m, err := period.Parse(value)
	if err != nil {
		return period.Month{}, apperrors.WithMessage(apperrors.ErrInvalidMonth, fmt.Sprintf("%s: %v", field, err))
	}
	return m, nil
}

// notFound maps gorm.ErrRecordNotFound to sentinel and anything else to an
// internal error.
func notFound(err error, sentinel *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// internal wraps a storage error unless it already is an AppError.
func internal(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func invalid(field, constraint string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s: %s", field, constraint))
}

func cleanName(s string) string {
	return strings.TrimSpace(s)
}
