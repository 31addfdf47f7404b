package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/adaptive-tutor-service/internal/errors"
)

var (
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoQuestionsAvailable means the repository holds no servable question.
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrQuestionNotFound     = errors.New("question not found")

	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

func NewValidationError(field, message string, value any) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuestionNotFound)
}

// IsUnavailable checks if the request cannot be served with the current bank
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNoQuestionsAvailable)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrUnsupportedFormat) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}
