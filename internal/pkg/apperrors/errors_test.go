package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "TEST_CODE",
				Message: "This is a test error",
			},
			expected: "[TEST_CODE] This is a test error",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "This is a test error without code",
			},
			expected: "This is a test error without code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("email", "must not be empty")

	assert.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "email", validationErr.Field)
	assert.Equal(t, "must not be empty", validationErr.Message)
	assert.Contains(t, err.Error(), "validation failed for field 'email'")
}

func TestWrapDatabaseError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapDatabaseError(cause, "failed to query customers")

	assert.ErrorIs(t, err, ErrDatabase)
	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DB_ERROR", appErr.Code)
}
