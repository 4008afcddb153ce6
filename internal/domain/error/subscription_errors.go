// Package error defines domain-specific errors for the SubTracker application.
package error

import "errors"

// Subscription domain errors.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSubscriptionNameRequired is returned when a record is submitted without a name.
	ErrSubscriptionNameRequired = errors.New("subscription name is required")

	// ErrInvalidPrice is returned when the price is missing or negative.
	ErrInvalidPrice = errors.New("price must be a non-negative number")

	// ErrInvalidDate is returned when a date field cannot be parsed as a calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date must not precede start date")

	// ErrInvalidReminderDays is returned when the reminder lead time is negative.
	ErrInvalidReminderDays = errors.New("reminder days must be non-negative")

	// ErrInvalidBillingCycle is returned when the billing cycle is not a known value.
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
)

// SubscriptionErrorCode defines error codes for subscription errors.
// Format: SUB-XXYYYY where XX is category and YYYY is specific error.
type SubscriptionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSubscriptionNameRequired SubscriptionErrorCode = "SUB-010001"
	ErrCodeInvalidPrice             SubscriptionErrorCode = "SUB-010002"
	ErrCodeInvalidDate              SubscriptionErrorCode = "SUB-010003"
	ErrCodeInvalidDateRange         SubscriptionErrorCode = "SUB-010004"
	ErrCodeInvalidReminderDays      SubscriptionErrorCode = "SUB-010005"
	ErrCodeInvalidBillingCycle      SubscriptionErrorCode = "SUB-010006"
	ErrCodeSubscriptionNotFound     SubscriptionErrorCode = "SUB-010007"
)

// SubscriptionError represents a subscription error with code and message.
type SubscriptionError struct {
	Code    SubscriptionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubscriptionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// NewSubscriptionError creates a new SubscriptionError with the given code and message.
func NewSubscriptionError(code SubscriptionErrorCode, message string, err error) *SubscriptionError {
	return &SubscriptionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
