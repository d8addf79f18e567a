package errors

import "errors"

// Custom application errors
var (
	ErrSessionNotFound   = errors.New("study session not found")         // Update/delete referencing an unknown session id
	ErrPermissionDenied  = errors.New("permission denied")               // Enable call after the user declined the permission prompt
	ErrExternalService   = errors.New("external service call failed")    // Notification scheduler or calendar provider failure
	ErrValidation        = errors.New("invalid session time range")      // Session start time must come before its end time
	ErrDatabaseOperation = errors.New("database operation failed")       // Generic database error
	ErrScheduling        = errors.New("failed to schedule notification") // Generic scheduling error
	ErrInternalServer    = errors.New("internal server error")           // Generic internal error
)
