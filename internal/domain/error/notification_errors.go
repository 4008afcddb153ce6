package error

import "errors"

// Notification and lookup collaborator errors. Collaborator failures are
// non-fatal to the core; they surface as logged diagnostics at most.
var (
	// ErrInvalidPermission is returned when a permission value is not one of
	// granted, denied or default.
	ErrInvalidPermission = errors.New("invalid notification permission")

	// ErrLookupUnavailable is returned when the logo/advice lookup service is
	// not configured or unreachable.
	ErrLookupUnavailable = errors.New("lookup service unavailable")

	// ErrNoActiveSubscriptions is returned when advice is requested for an
	// empty active set.
	ErrNoActiveSubscriptions = errors.New("no active subscriptions")
)

// NotificationErrorCode defines error codes for notification errors.
type NotificationErrorCode string

const (
	ErrCodeInvalidPermission     NotificationErrorCode = "NTF-010001"
	ErrCodeLookupUnavailable     NotificationErrorCode = "NTF-020001"
	ErrCodeNoActiveSubscriptions NotificationErrorCode = "NTF-010002"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
