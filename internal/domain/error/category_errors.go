package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNameRequired is returned when a custom category is submitted blank.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameExists is returned when the name collides with a default or
	// existing custom category.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNotFound is returned when a custom category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryIsDefault is returned when attempting to delete a built-in category.
	ErrCategoryIsDefault = errors.New("default categories cannot be deleted")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryIsDefault    CategoryErrorCode = "CAT-010004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
