package services

import "errors"

// Error taxonomy shared by all services. Controllers translate these to
// HTTP statuses; services never touch gin.
var (
	// ErrMissingSearchParams is returned before any venue query runs.
	ErrMissingSearchParams = errors.New("Category and city are required")

	// ErrInvalidCredentials covers unknown usernames and bad passwords alike.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrAccountDisabled is returned for a correct password on a
	// deactivated account.
	ErrAccountDisabled = errors.New("User account is disabled")

	// ErrConflict signals a uniqueness violation (username or email taken).
	ErrConflict = errors.New("Username or email already registered")

	// ErrNotFound signals an unknown or inactive record id.
	ErrNotFound = errors.New("Not found")

	// ErrSessionNotFound signals a missing, expired or logged-out session token.
	ErrSessionNotFound = errors.New("Session not found")
)

// ValidationError carries a field-level registration failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
